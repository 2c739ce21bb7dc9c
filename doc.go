// Package opexpr implements an operator-precedence calculator whose operators
// are defined by the caller.
//
// A Table holds binary operators in precedence levels, each level grouping
// either left or right. Parsing an expression finds the loosest operator
// outside of parentheses, splits the text there, and parses each side in turn,
// so "5-2-1" is (5-2)-1 when - groups left and "2^3^2" is 2^(3^2) when ^
// groups right. Where several operators could match at the same place, the
// longest wins, so "2**3" uses ** rather than *.
//
// A parsed Tree can be evaluated or rendered either with every operation in
// brackets or with only the parentheses that its grouping needs. Trees can
// also be generated at random, which is handy for checking that rendering and
// parsing agree.
//
// Operator tables can be written as text, with levels from loosest to tightest
// separated by semicolons:
//
//	left + -; left * / %; right ^
//
package opexpr
