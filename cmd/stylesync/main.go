// Command stylesync renders, diffs and replays inline style declarations.
package main

func main() {
	execute()
}
