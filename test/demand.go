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

package test

import "testing"

// DemandSuccess tests argument v the same way as ExpectSuccess() but a
// failed test is a testing fatality.
func DemandSuccess(t *testing.T, v any) {
	t.Helper()

	switch v := v.(type) {
	case bool:
		if !v {
			t.Fatalf("demanded success (bool)")
		}

	case error:
		if v != nil {
			t.Fatalf("demanded success (error: %v)", v)
		}

	case nil:

	default:
		t.Fatalf("unsupported type (%T) for expectation testing", v)
	}
}

// DemandFailure tests argument v the same way as ExpectFailure() but a
// failed test is a testing fatality.
func DemandFailure(t *testing.T, v any) {
	t.Helper()

	switch v := v.(type) {
	case bool:
		if v {
			t.Fatalf("demanded failure (bool)")
		}

	case error:
		if v == nil {
			t.Fatalf("demanded failure (error)")
		}

	case nil:
		t.Fatalf("demanded failure (nil)")

	default:
		t.Fatalf("unsupported type (%T) for expectation testing", v)
	}
}
