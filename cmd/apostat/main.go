// Command apostat is a small demonstration CLI wiring apostat's core
// packages end to end: "estimate" fits a toy normal model by maximum
// likelihood, "mcmc" samples its posterior instead, and "rake" runs
// iterative proportional fitting over a toy 2x2 margin table.
package main

func main() {
	Execute()
}
