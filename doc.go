// Copyright (c) 2025 Marcos Sartori
//
// MIT License

/*
Package espressologic manipulates Boolean functions and minimizes two-level
logic, combining a reduced ordered Binary Decision Diagram (BDD) engine with
a cube-based cover model in the espresso tradition.

# Expressions

Expr is an opaque handle on a Boolean function. Expressions are built from
Variable and Constant and combined with And, Or and Not; every connective is
reduced through a single if-then-else operation over a shared, hash-consed
node table, so the representation is canonical: two expressions denote the
same function exactly when Equal reports true, at the cost of a pointer
comparison. Expressions can be evaluated under an assignment, enumerated as
a disjunctive normal form (Dnf), folded over their factored form (Fold,
FoldWithContext) and rendered as a sum-of-products string.

The node table is a process-wide singleton held through a weak reference:
it stays alive while any expression does and is rebuilt from scratch once
all of them have been collected. All table operations are safe for
concurrent use.

# Covers

Cover is a multi-output truth table in cube form, split into the on-set
(F), don't-care set (D) and off-set (R) partitions selected by its
CoverType. Covers grow on demand as wider cubes arrive, can name their
columns, and convert to and from expressions (AddExpression, ToExpression,
Expressions).

# Minimization

Minimize, MinimizeExact and MinimizeWithConfig hand a cover's partitions to
the two-level minimizer and rebuild a cover of the same shape from the
result. Expressions minimize through a single-output cover the same way.
The minimizer keeps one live instance per process, fixed to one set of
dimensions; concurrent requests with conflicting dimensions fail with a
MinimizationError rather than corrupting the instance.

The library is written in pure Go, without CGo.
*/
package espressologic
