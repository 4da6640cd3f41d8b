// Package domain contains the value types shared between the puzzle solvers,
// the runner and the driver. They carry no parsing or I/O logic.
package domain
