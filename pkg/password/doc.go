// Package password scores passwords against a fixed rule set and generates
// random passwords that satisfy it.
//
// Scoring (Evaluate) awards up to two points for length (8 and 12 characters)
// and one point each for an uppercase letter, a lowercase letter, a digit and
// one of !@#$%^&*. A password whose lowercase form contains a common pattern
// such as "password" or "admin" has its score capped at zero. Scores of 5 or
// more rate Strong, 4 rates Moderate and anything else Weak.
//
// Generation (Generate) always includes one character of each class, so any
// generated password of 12 or more characters rates Strong unless the random
// draw happens to spell a common pattern.
//
// Both functions are pure apart from the entropy read by Generate and are safe
// for concurrent use.
package password
