// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package keyword

import "iter"

// All returns an iterator over all valid keywords, in declaration order.
func All() iter.Seq[Keyword] {
	return func(yield func(Keyword) bool) {
		for k := Unknown + 1; int(k) < Total; k++ {
			if !yield(k) {
				return
			}
		}
	}
}

// IsValid returns whether this is a valid keyword value (not including
// [Unknown]).
func (k Keyword) IsValid() bool {
	return k > Unknown && int(k) < Total
}

// IsDeclaration returns whether this keyword may begin a declaration in a
// scope.
func (k Keyword) IsDeclaration() bool {
	switch k {
	case Concept, Class, Struct, Namespace, Using:
		return true
	default:
		return false
	}
}

// IsQualifier returns whether this keyword may prefix a type name.
func (k Keyword) IsQualifier() bool {
	switch k {
	case Const, Typename, Template:
		return true
	default:
		return false
	}
}

// IsFunctionBody returns whether this keyword may follow `=` after a function
// signature.
func (k Keyword) IsFunctionBody() bool {
	return k == Required || k == Default
}
