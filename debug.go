//go:build paging_debug

package paging

const debugging = true

func assert(cond bool, message string) {
	if !cond {
		panic(invariantError("%s", message))
	}
}
