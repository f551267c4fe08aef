//go:build windows

package main

const lineTerminator = "\r\n"
