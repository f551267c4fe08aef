//go:build !windows

package main

const lineTerminator = "\n"
