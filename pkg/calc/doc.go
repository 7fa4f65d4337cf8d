// Package calc implements the personal-finance calculation library: salary
// conversion, take-home pay, cost of living, compound interest, loans,
// mortgages, savings goals, net worth, 401(k) projection, debt payoff,
// budgeting, and income tax estimation.
//
// Every calculator is a pure function over a typed input struct; calling one
// twice with identical input yields identical output. Inputs are assumed to
// be range-validated by the caller (the HTTP layer enforces the validate
// tags). Domain "no result" conditions return a nil result pointer rather
// than an error.
package calc
