// This file is part of armv6m.
//
// armv6m is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// armv6m is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with armv6m.  If not, see <https://www.gnu.org/licenses/>.

package logger_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/armv6m/logger"
	"github.com/jetsetilly/armv6m/test"
)

// test central logger and the use of the Tail() function
func TestCentralLogger(t *testing.T) {
	logger.Clear()
	w := &strings.Builder{}

	logger.Write(w)
	test.ExpectEquality(t, w.String(), "")

	logger.Log("test", "this is a test")
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	// clear the test.Writer buffer before continuing, makes comparisons easier
	// to manage
	w.Reset()

	logger.Log("test2", "this is another test")
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	logger.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for exactly the correct number of entries is okay
	w.Reset()
	logger.Tail(w, 2)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Reset()
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	// and no entries
	w.Reset()
	logger.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

// repeated entries fold into the previous entry rather than filling the log
func TestRepeatedEntries(t *testing.T) {
	logger.Clear()
	w := &strings.Builder{}

	logger.Log("test", "same detail")
	logger.Log("test", "same detail")
	logger.Log("test", "same detail")
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "test: same detail (repeat x3)\n")

	// a different tag with the same detail is a new entry
	w.Reset()
	logger.Log("test2", "same detail")
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: same detail\n")
}

func TestLogf(t *testing.T) {
	logger.Clear()
	w := &strings.Builder{}

	logger.Logf("decode", "unallocated hint (%04x)", 0xbf01)
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "decode: unallocated hint (bf01)\n")
}

func TestEcho(t *testing.T) {
	logger.Clear()
	w := &strings.Builder{}

	logger.SetEcho(w)
	logger.Log("test", "echoed entry")
	test.ExpectEquality(t, w.String(), "test: echoed entry\n")

	// entries made after echoing is turned off go to the log only
	logger.SetEcho(nil)
	logger.Log("test", "quiet entry")
	test.ExpectEquality(t, w.String(), "test: echoed entry\n")

	w.Reset()
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test: quiet entry\n")
}
