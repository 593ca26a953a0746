// This file is part of Nescore.
//
// Nescore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Nescore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Nescore.  If not, see <https://www.gnu.org/licenses/>.

// Package test contains helper functions to remove common boilerplate from
// tests.
//
// The Expect*() functions report a failure with t.Errorf() and allow the test
// to continue. The Demand*() functions report with t.Fatalf() and should be
// used when later parts of the test depend on the value being correct. For
// example, checking the length of a slice before iterating over it.
//
// ExpectSuccess() and ExpectFailure() test a value for a generic 'success'
// condition suitable for its type:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// It is worth describing the nil case because it is not obvious. An error
// interface holding nil arrives at these functions as an untyped nil and
// because of how errors usually work (nil to indicate no error) it must be
// interpreted as success.
//
// All functions accept optional tags which are prepended to the failure
// message. Useful in loops to identify the iteration that failed:
//
//	for i := range 256 {
//		test.ExpectEquality(t, mem.Read(i), 0, i)
//	}
//
// The CompareWriter type implements the io.Writer interface and should be used
// to capture output for comparison.
package test
