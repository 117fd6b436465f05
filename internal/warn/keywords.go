package warn

// buttonSelectors locate candidate agreement controls on a page
var buttonSelectors = []string{
	`button[type="submit"]`,
	`input[type="submit"]`,
	`button:not([type="button"])`,
	`[role="button"]`,
	".btn-primary",
	".signup-btn",
	".register-btn",
	".submit-btn",
}

// agreementKeywords filter candidates down to buttons that complete a
// signup or agreement flow
var agreementKeywords = []string{
	"sign up",
	"signup",
	"register",
	"create account",
	"join",
	"agree",
	"accept",
	"submit",
	"continue",
	"get started",
	"start",
}

// maxInterceptedButtons caps interception on pathological pages
const maxInterceptedButtons = 5
