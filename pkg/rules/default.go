package rules

import "regexp"

// importRule matches `from '<from>'` with either quote style and rewrites it to a
// single-quoted `from '<to>'`
func importRule(from, to string) Rule {
	return Rule{
		Pattern:     `from ['"]` + regexp.QuoteMeta(from) + `['"]`,
		Replacement: "from '" + to + "'",
	}
}

// defaultRules moves the flat src/ layout into shared/ and infrastructure/.
// Order matters: each rule runs on the output of the ones above it.
var defaultRules = []Rule{
	// types
	importRule("../types", "../../shared/types"),
	importRule("../../types", "../../shared/types"),
	importRule("./types", "../shared/types"),

	// errors
	importRule("../types/errors", "../../shared/errors"),
	importRule("../../types/errors", "../../shared/errors"),

	// options
	importRule("../types/options", "../../shared/types/options"),
	importRule("../../types/options", "../../shared/types/options"),

	// utils
	importRule("../utils/helpers", "../../shared/utils/helpers"),
	importRule("../../utils/helpers", "../../shared/utils/helpers"),
	importRule("../utils/validators", "../../shared/utils/validators"),
	importRule("../../utils/validators", "../../shared/utils/validators"),

	// cache
	importRule("../cache/CacheManager", "../../infrastructure/cache"),
	importRule("../cache/InMemoryCache", "../../infrastructure/cache"),
	importRule("./CacheManager", "./CacheManager"),

	// fetcher
	importRule("../fetcher/Fetcher", "../../infrastructure/http"),
	importRule("../fetcher/BootstrapDiscovery", "../../infrastructure/http"),
	importRule("../fetcher/SSRFProtection", "../../infrastructure/security"),
	importRule("./Fetcher", "./Fetcher"),

	// normalizer
	importRule("../normalizer/Normalizer", "../../infrastructure/http"),
	importRule("../normalizer/PIIRedactor", "../../infrastructure/security"),

	// client
	importRule("./QueryOrchestrator", "../services"),
}

var defaultSet = MustCompile(defaultRules)

// 📦 Default returns the built-in restructuring rule set
func Default() *Set {
	return defaultSet
}

// DefaultRules returns a copy of the built-in rules, for merging with user rules
func DefaultRules() []Rule {
	out := make([]Rule, len(defaultRules))
	copy(out, defaultRules)
	return out
}
