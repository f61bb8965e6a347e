//go:build !integration

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandRegistration(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["download"])
	assert.True(t, names["analyze"])
	assert.True(t, names["export"])

	sub := make(map[string]bool)
	for _, c := range analyzeCmd.Commands() {
		sub[c.Name()] = true
	}
	for _, want := range []string{"capacity", "geo", "evictions", "distance", "stats"} {
		assert.True(t, sub[want], want)
	}
}
