// Command cellbench fills a multirow or doublehash table to a target load
// factor with pseudo-random keys and prints the lookup probe histogram.
package main

func main() {
	execute()
}
