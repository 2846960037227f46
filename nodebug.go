//go:build !paging_debug

package paging

const debugging = false

func assert(bool, string) {}
