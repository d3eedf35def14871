/*
Package search implements substring search over UTF-16 code units.

The matchers are a Boyer–Moore–Horspool variant with two shift heuristics:
on a mismatch the window advances by the larger of

  - the bad-character shift of the code unit just past the window, and
  - the shift of the mismatching ("stared at") code unit, minus the length
    of the already matched suffix.

For the stare heuristic the pattern's final code unit uses a special shift,
its table value before the entry was zeroed.

Forward and Skip scan left to right and differ only after a match: Forward
continues with the bad-character rule and may report overlapping matches,
Skip jumps past the match. Reverse mirrors Forward and reports matches from
the end of the source towards its start. SkipAll is the Skip matcher with the
limit policy used for bulk replacement.

All results are code-unit offsets. An empty pattern, a negative offset or a
pattern longer than the remaining source yields an empty result.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package search
