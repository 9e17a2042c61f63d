package collector

import "testing"

// TestShouldExclude exercises every pattern variant against representative paths.
func TestShouldExclude(testingHandle *testing.T) {
	testCases := []struct {
		name              string
		relativePath      string
		exclusionPatterns []string
		expected          bool
	}{
		{"no patterns", "src", nil, false},
		{"match all", "anything/at/all", []string{"**"}, true},
		{"match all applies to walk root", ".", []string{"**"}, true},
		{"basename match at top level", "node_modules", []string{"**/node_modules"}, true},
		{"basename match nested", "src/app/node_modules", []string{"**/node_modules"}, true},
		{"basename is case sensitive", "src/Node_Modules", []string{"**/node_modules"}, false},
		{"basename requires full component", "src/node_modules_cache", []string{"**/node_modules"}, false},
		{"literal path exact match", "a/b", []string{"a/b"}, true},
		{"literal path with leading dot component", "./a/b", []string{"a/b"}, true},
		{"literal pattern with leading dot component", "a/b", []string{"./a/b"}, true},
		{"literal path rejects deeper", "a/b/c", []string{"a/b"}, false},
		{"literal path rejects prefixed", "x/a/b", []string{"a/b"}, false},
		{"literal path is case sensitive", "A/B", []string{"a/b"}, false},
		{"first match wins across variants", "vendor", []string{"**/missing", "vendor"}, true},
	}

	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(subtestHandle *testing.T) {
			actual := ShouldExclude(testCase.relativePath, testCase.exclusionPatterns)
			if actual != testCase.expected {
				subtestHandle.Fatalf("ShouldExclude(%q, %v) = %v, want %v",
					testCase.relativePath, testCase.exclusionPatterns, actual, testCase.expected)
			}
		})
	}
}
