// Package pipeline implements the page generation stages around the markdown
// core.
//
// Stages, in the order the converter runs them:
//   - Markdown preprocessing (line ending normalization, blank line compression)
//   - Markdown to HTML via the internal markdown package (title, body, warnings)
//   - Optional syntax highlighting of <pre><code> blocks with chroma
//   - Page template substitution ({{ Title }} and {{ Content }})
//   - CSS injection for highlighting styles
//   - Base path rewriting of root-relative links for sub-path deployments
//
// File traversal, static copying and writing are left to the caller.
package pipeline
