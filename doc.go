// Package lvlprob is your in-memory toolkit for exact discrete probability:
// build factors over named random variables, multiply them, sum variables
// out, condition on evidence — and solve small decision problems on grids.
//
// 🚀 What is lvlprob?
//
//	A compact, deterministic, zero-side-effect library that brings together:
//		• Factor algebra: variables, assignments, factor tables
//		• Exact inference: product, marginalization, restriction, normalization
//		• Bayesian posteriors: condition a joint on observed evidence
//		• Grid MDPs: Bellman value iteration over walls, start and goal
//
// ✨ Why choose lvlprob?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic by construction – stable enumeration order everywhere
//   - Pure Go – no cgo, no hidden deps
//   - Honest complexity – every operation documents its combinatorial cost
//
// Under the hood, everything is organized under three subpackages:
//
//	factor/ — Variable, Assignment, Factor and the core algebra
//	bayes/  — posterior computation (product + restrict + normalize)
//	mdp/    — grid Markov decision processes via value iteration
//
// Quick example, in words:
//
//	P(D) × P(T|D), restricted to T=1 and renormalized, is P(D|T=1) —
//	a prior times a likelihood, filtered by evidence, is a posterior.
//
// Dive into each package's doc.go and example tests for full walkthroughs.
//
//	go get github.com/katalvlaran/lvlprob
package lvlprob
