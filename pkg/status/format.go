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

package status

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxLiteralLength is the longest single line quoted back verbatim.
const MaxLiteralLength = 40

// Copying is reported when a copy starts.
func Copying(source, destination string) string {
	return fmt.Sprintf(`Copying "%s" to "%s"`, source, destination)
}

// Copied is reported when a copy finishes.
func Copied(source, destination string) string {
	return fmt.Sprintf(`Copied "%s" to "%s"`, source, destination)
}

// CopyFailed is reported when a copy fails.
func CopyFailed(source, destination string, err error) string {
	return fmt.Sprintf(`Error copying: %v ("%s" to "%s")`, err, source, destination)
}

// ClipboardMessage describes text placed on the clipboard.
func ClipboardMessage(text string) string {
	if lines := strings.Count(text, "\n") + 1; lines > 1 {
		return fmt.Sprintf("Copied %s to clipboard", Plural(lines, "line"))
	}
	if utf8.RuneCountInString(text) > MaxLiteralLength {
		runes := []rune(text)
		text = string(runes[:MaxLiteralLength-3]) + "..."
	}
	return fmt.Sprintf(`Copied "%s" to clipboard`, text)
}

// Plural formats n with the noun in singular or plural form.
func Plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
