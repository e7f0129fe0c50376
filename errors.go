// Copyright 2025 The Filtro Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package filtro

import "errors"

// Static errors for better error handling and testing.
// These should be wrapped with fmt.Errorf and %w when context is needed.
var (
	// ErrMethodUnknown is returned by NewRequest when the method is not one
	// of the seven methods this library recognizes.
	ErrMethodUnknown = errors.New("filtro: unrecognized HTTP method")

	// ErrEitherWrongSide is returned by Either.MustLeft/Either.MustRight when
	// called on the side that was not populated.
	ErrEitherWrongSide = errors.New("filtro: either holds the other side")
)
