// Copyright 2025 walteh LLC
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

// Package text holds the pure content transformations: the icon markup
// rewriter and the icon table splicer. Neither touches the filesystem.
package text

// 🗺️ Mapper resolves an old icon identifier to its replacement
type Mapper interface {
	Lookup(old string) (string, bool)
}

// ReplacementResult contains the results of a text replacement operation
type ReplacementResult struct {
	// WasModified indicates if any replacements were made
	WasModified bool

	// ReplacementCount is the number of replacements made
	ReplacementCount int

	// Missing lists, per occurrence, identifiers that had no mapping
	Missing []string

	// OriginalContent is the content before replacements
	OriginalContent []byte

	// ModifiedContent is the content after replacements
	ModifiedContent []byte
}
