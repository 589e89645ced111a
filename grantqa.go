// Package grantqa answers natural language questions about Web3 and DeFi
// grant programs. A question is reduced to a search keyword, looked up in a
// structured grant store, and formatted by category. When the store has no
// match the question is handed to an LLM completion backend instead.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, postgres/, openai/).
package grantqa
