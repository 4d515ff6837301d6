// Package rules provides the built-in typography rules for gozhlint.
//
// # Rule Families
//
//   - Spacing:
//
//   - ZH001: zh-latin-spacing - Chinese ideograph directly next to a Latin letter
//
//   - ZH002: zh-digit-spacing - Chinese ideograph directly next to an ASCII digit
//
//   - Punctuation:
//
//   - ZH101: fullwidth-punctuation-space - Whitespace before a full-width punctuation mark
//
//   - ZH102: fullwidth-parenthesis - Alphanumeric text glued to a full-width parenthesis
//
//   - ZH103: english-halfwidth-punctuation - English sentence ending in full-width punctuation
//
// # Rule IDs
//
// ZH0xx are spacing rules, ZH1xx are punctuation rules. Spacing rules run
// before punctuation rules, which fixes the order of report buckets.
//
// # Character Classes
//
// A Chinese ideograph is a code point in U+4E00..U+9FFF. Full-width
// punctuation is U+3000..U+303F or U+FF00..U+FFEF. Whitespace follows the
// Unicode definition, including U+001C..U+001F and the ideographic space.
//
// # Registration
//
// Rules are registered with the default registry via RegisterAll, together
// with their localized labels as aliases.
package rules
