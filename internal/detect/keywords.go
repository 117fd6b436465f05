package detect

// Keyword tables are kept as data so thresholds and signal sets can be tuned
// and tested independently of the traversal logic.

// signupButtonKeywords match the visible text of clickable elements that
// start an account-creation flow. "sign in"/"log in" are included on purpose:
// combined login/signup pages are common and a false positive on a login page
// is acceptable for a heuristic gate.
var signupButtonKeywords = []string{
	"sign up", "signup", "register", "create account", "create an account",
	"join", "join now", "get started", "start free", "try free",
	"sign in", "log in", "continue",
}

// termsCheckboxKeywords match the label or surrounding text of consent checkboxes.
var termsCheckboxKeywords = []string{
	"i agree", "i accept", "terms of service", "terms and conditions",
	"privacy policy", "agree to", "accept the",
}

// identityFieldKeywords match name/id/placeholder/autocomplete attributes of
// inputs that collect an account identifier.
var identityFieldKeywords = []string{
	"email", "user", "login", "phone",
}

// signupFormActionKeywords match form action URLs that submit a registration.
var signupFormActionKeywords = []string{
	"signup", "register", "create", "join",
}

// signupFormBodyKeywords match form inner HTML for registration flows whose
// action URL is opaque.
var signupFormBodyKeywords = []string{
	"create account", "sign up", "register",
}

// titleKeywords match page titles of signup/login flows.
var titleKeywords = []string{
	"sign up", "register", "create account", "join", "log in", "sign in",
}

// urlKeywords match page URLs of signup/login flows.
var urlKeywords = []string{
	"signup", "register", "join", "create", "login", "signin",
}

// Signal weights. Independent weak signals are summed and clamped; signup
// flows vary too much in markup for any single rule to carry the decision.
const (
	weightPasswordField   = 25
	weightEmailField      = 20
	weightConfirmPassword = 30
	weightSignupButton    = 30
	weightTermsCheckbox   = 25
	weightSignupForm      = 10
	weightTitleMatch      = 20
	weightURLMatch        = 20

	maxScore = 100
)
