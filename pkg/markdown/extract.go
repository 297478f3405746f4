// Package markdown extracts fenced code blocks from model replies.
package markdown

import "strings"

const fence = "```"

// ExtractCodeBlocks scans text line by line and returns the body of every
// fully closed fenced code block, in order of appearance. The opening fence
// line (language tag included) is never part of a block, in-block lines are
// kept verbatim, and an unterminated trailing block yields nothing. Fence
// lines strictly toggle state; nested fences are not supported.
func ExtractCodeBlocks(text string) []string {
	var blocks []string
	var current []string
	inBlock := false

	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, fence) {
			if inBlock {
				blocks = append(blocks, strings.Join(current, "\n"))
				current = nil
				inBlock = false
			} else {
				inBlock = true
			}
			continue
		}
		if inBlock {
			current = append(current, line)
		}
	}

	return blocks
}
