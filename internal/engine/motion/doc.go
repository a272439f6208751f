// Package motion implements Vim cursor motions over a buffer.Snapshot.
//
// Every motion is a pure function of (snapshot, offset, count) and returns a
// new rune offset in [0, snap.Len()]. The input offset is clamped first and a
// count below 1 is treated as 1. A count of n applies the single-step motion n
// times; repeats stop as soon as a step makes no progress, so motions that
// saturate at a buffer edge turn the remaining repeats into no-ops.
//
// # Motions
//
//   - Character: Left (h), Right (l)
//   - Line: Up (k), Down (j), LineStart (0), LineEnd ($), FirstNonBlank (^),
//     LastNonBlank (g_), GotoLine (gg, G, nG)
//   - Word: WordForward (w/W), WordEnd (e/E), WordBackward (b/B),
//     WordEndBackward (ge/gE)
//   - Paragraph: ParagraphForward (}), ParagraphBackward ({)
//   - Character search: Find (f, F, t, T and their ; , repeats)
//
// Vertical motions reapply the column of the line the cursor starts on,
// clamped to the target line. No column is remembered between calls.
//
// # Word Classes
//
// Class splits runes into whitespace, word characters (letters, digits and
// underscore) and punctuation. WORD motions (W, E, B, gE) pass bigWord=true,
// which folds punctuation into the word class.
package motion
