package io

import "fmt"

// columnNames turns a header row into usable column names. An empty cell at
// position i becomes "Unnamed: i" and a repeated name gets a ".N" suffix
// counting earlier uses, so "loss,loss" reads as "loss" and "loss.1".
func columnNames(header []string) []string {
	names := make([]string, len(header))
	counts := make(map[string]int, len(header))
	for i, name := range header {
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		for n := counts[name]; n > 0; n = counts[name] {
			counts[name] = n + 1
			name = fmt.Sprintf("%s.%d", name, n)
		}
		counts[name]++
		names[i] = name
	}
	return names
}
