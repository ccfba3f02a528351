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

// Package test contains helper functions to remove common boilerplate to
// make testing easier.
//
// The ExpectSuccess and ExpectFailure functions test for success and failure
// under generic conditions. It is worth describing how they handle the nil
// type because it is not obvious. The nil type is considered a success and
// consequently will cause ExpectFailure to fail and ExpectSuccess to
// succeed. Because of how errors usually work (nil to indicate no error) we
// *need* to interpret nil in this way.
//
// ExpectEquality and DemandEquality compare like-typed values for equality;
// the Demand variant is a testing fatality on failure. ExpectDeepEquality
// exists for values, such as interface values, that the comparable
// constraint cannot express.
package test
