// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (cars, gear directions, error kinds) and contracts
// (stores and services) only.
package domain
