package alternatives

import "github.com/ssudhiravinesh/blindsight/internal/severity"

// catalog is the curated alternatives database. Suggestions are ordered
// most preferred first and capped at three per category.
var catalog = map[severity.ServiceCategory]Category{
	severity.ServiceEmail: {
		DisplayName: "Email Service",
		Suggestions: []Suggestion{
			{Name: "ProtonMail", URL: "https://proton.me/mail", Reason: "End-to-end encrypted, Swiss privacy laws, zero-access encryption"},
			{Name: "Tuta Mail", URL: "https://tuta.com", Reason: "German privacy laws, encrypted calendar, open source"},
			{Name: "Fastmail", URL: "https://fastmail.com", Reason: "No ads, strong spam filtering, privacy-focused Australian company"},
		},
	},
	severity.ServiceMessaging: {
		DisplayName: "Messaging App",
		Suggestions: []Suggestion{
			{Name: "Signal", URL: "https://signal.org", Reason: "Gold standard encryption, open source, minimal metadata collection"},
			{Name: "Element (Matrix)", URL: "https://element.io", Reason: "Decentralized, end-to-end encrypted, can be self-hosted"},
			{Name: "Session", URL: "https://getsession.org", Reason: "No phone number required, decentralized, onion routing"},
		},
	},
	severity.ServiceVideoConf: {
		DisplayName: "Video Conferencing",
		Suggestions: []Suggestion{
			{Name: "Jitsi Meet", URL: "https://meet.jit.si", Reason: "Open source, no account required, can be self-hosted"},
			{Name: "Signal Video Calls", URL: "https://signal.org", Reason: "End-to-end encrypted, built into Signal app"},
			{Name: "BigBlueButton", URL: "https://bigbluebutton.org", Reason: "Open source, designed for education, self-hostable"},
		},
	},
	severity.ServiceSocialMedia: {
		DisplayName: "Social Platform",
		Suggestions: []Suggestion{
			{Name: "Mastodon", URL: "https://joinmastodon.org", Reason: "Decentralized, no ads, no tracking, open source"},
			{Name: "Bluesky", URL: "https://bsky.app", Reason: "Decentralized protocol, user control over algorithms"},
			{Name: "Pixelfed", URL: "https://pixelfed.org", Reason: "Decentralized Instagram alternative, no ads or tracking"},
		},
	},
	severity.ServiceVideoSharing: {
		DisplayName: "Video Sharing",
		Suggestions: []Suggestion{
			{Name: "PeerTube", URL: "https://joinpeertube.org", Reason: "Decentralized, federated video hosting, no ads"},
			{Name: "Odysee", URL: "https://odysee.com", Reason: "Blockchain-based, creator-friendly, minimal tracking"},
		},
	},
	severity.ServiceForum: {
		DisplayName: "Forum / Community",
		Suggestions: []Suggestion{
			{Name: "Lemmy", URL: "https://join-lemmy.org", Reason: "Decentralized Reddit alternative, federated, open source"},
			{Name: "Discourse", URL: "https://discourse.org", Reason: "Open source, self-hostable, transparent moderation"},
		},
	},
	severity.ServiceSearch: {
		DisplayName: "Search Engine",
		Suggestions: []Suggestion{
			{Name: "DuckDuckGo", URL: "https://duckduckgo.com", Reason: "No tracking, no search history, private by default"},
			{Name: "Brave Search", URL: "https://search.brave.com", Reason: "Independent index, no tracking, anonymous queries"},
			{Name: "Startpage", URL: "https://startpage.com", Reason: "Google results without tracking, EU privacy laws"},
		},
	},
	severity.ServiceBrowser: {
		DisplayName: "Web Browser",
		Suggestions: []Suggestion{
			{Name: "Firefox", URL: "https://firefox.com", Reason: "Open source, strong privacy features, customizable"},
			{Name: "Brave", URL: "https://brave.com", Reason: "Built-in ad/tracker blocking, Chromium-based"},
			{Name: "Tor Browser", URL: "https://torproject.org", Reason: "Maximum anonymity, onion routing, circumvents censorship"},
		},
	},
	severity.ServiceDNS: {
		DisplayName: "DNS Provider",
		Suggestions: []Suggestion{
			{Name: "Quad9", URL: "https://quad9.net", Reason: "Swiss non-profit, blocks malware, no personal data logging"},
			{Name: "NextDNS", URL: "https://nextdns.io", Reason: "Customizable ad-blocking DNS, privacy-first, optional logging"},
			{Name: "AdGuard DNS", URL: "https://adguard-dns.io", Reason: "Ad-blocking DNS, open source server, no logging"},
		},
	},
	severity.ServiceVPN: {
		DisplayName: "VPN Service",
		Suggestions: []Suggestion{
			{Name: "ProtonVPN", URL: "https://protonvpn.com", Reason: "Swiss-based, no-logs policy, open source apps, free tier"},
			{Name: "Mullvad VPN", URL: "https://mullvad.net", Reason: "Anonymous accounts, no email required, audited no-logs policy"},
			{Name: "IVPN", URL: "https://ivpn.net", Reason: "Transparent company, multi-hop connections, strong privacy focus"},
		},
	},
	severity.ServiceCloudStorage: {
		DisplayName: "Cloud Storage",
		Suggestions: []Suggestion{
			{Name: "Proton Drive", URL: "https://proton.me/drive", Reason: "End-to-end encrypted, Swiss privacy, zero-knowledge encryption"},
			{Name: "Tresorit", URL: "https://tresorit.com", Reason: "Zero-knowledge encryption, GDPR compliant, Swiss data centers"},
			{Name: "Sync.com", URL: "https://sync.com", Reason: "Canadian privacy laws, zero-knowledge encryption, free 5GB tier"},
		},
	},
	severity.ServiceFileSharing: {
		DisplayName: "File Sharing",
		Suggestions: []Suggestion{
			{Name: "OnionShare", URL: "https://onionshare.org", Reason: "Peer-to-peer, no third party, Tor-based encryption"},
			{Name: "Send (by Mozilla)", URL: "https://send.vis.ee", Reason: "End-to-end encrypted, files auto-delete after download"},
			{Name: "Wormhole", URL: "https://wormhole.app", Reason: "End-to-end encrypted, no account needed, auto-deletion"},
		},
	},
	severity.ServiceNotes: {
		DisplayName: "Note Taking App",
		Suggestions: []Suggestion{
			{Name: "Standard Notes", URL: "https://standardnotes.com", Reason: "End-to-end encrypted, open source, 100-year commitment"},
			{Name: "Joplin", URL: "https://joplinapp.org", Reason: "Open source, E2E encryption, Markdown support"},
			{Name: "Obsidian", URL: "https://obsidian.md", Reason: "Local-first, data stays on your device, plugin ecosystem"},
		},
	},
	severity.ServicePasswordManager: {
		DisplayName: "Password Manager",
		Suggestions: []Suggestion{
			{Name: "Bitwarden", URL: "https://bitwarden.com", Reason: "Open source, free tier, can self-host, independently audited"},
			{Name: "KeePassXC", URL: "https://keepassxc.org", Reason: "Offline-first, open source, full control over your data"},
			{Name: "Proton Pass", URL: "https://proton.me/pass", Reason: "E2E encrypted, integrated with Proton ecosystem, open source"},
		},
	},
	severity.ServiceAIAssistant: {
		DisplayName: "AI Assistant",
		Suggestions: []Suggestion{
			{Name: "DuckDuckGo AI Chat", URL: "https://duckduckgo.com/?q=DuckDuckGo+AI+Chat", Reason: "Anonymous access to AI models, no account needed"},
			{Name: "Perplexity", URL: "https://perplexity.ai", Reason: "Transparent source citations, less data collection"},
			{Name: "Jan", URL: "https://jan.ai", Reason: "Run AI models locally on your device, fully offline, open source"},
		},
	},
	severity.ServiceStreamingVideo: {
		DisplayName: "Video Streaming",
		Suggestions: []Suggestion{
			{Name: "Jellyfin", URL: "https://jellyfin.org", Reason: "Self-hosted media server, open source, no tracking"},
			{Name: "Kodi", URL: "https://kodi.tv", Reason: "Open source media center, local playback, extensible"},
			{Name: "PeerTube", URL: "https://joinpeertube.org", Reason: "Decentralized video hosting, federated, ad-free"},
		},
	},
	severity.ServiceStreamingMusic: {
		DisplayName: "Music Streaming",
		Suggestions: []Suggestion{
			{Name: "Navidrome", URL: "https://navidrome.org", Reason: "Self-hosted music server, open source, Subsonic compatible"},
			{Name: "Funkwhale", URL: "https://funkwhale.audio", Reason: "Decentralized, federated music platform, open source"},
			{Name: "Nuclear", URL: "https://nuclear.js.org", Reason: "Free music player, streams from multiple sources, no account"},
		},
	},
	severity.ServiceGaming: {
		DisplayName: "Gaming Platform",
		Suggestions: []Suggestion{
			{Name: "GOG", URL: "https://gog.com", Reason: "DRM-free games, optional client, respects ownership"},
			{Name: "itch.io", URL: "https://itch.io", Reason: "Indie platform, DRM-free, creator-friendly, fair revenue sharing"},
			{Name: "Lutris", URL: "https://lutris.net", Reason: "Open source gaming platform for Linux, no DRM"},
		},
	},
	severity.ServiceEcommerce: {
		DisplayName: "Online Shopping",
		Suggestions: []Suggestion{
			{Name: "Ethical Consumer", URL: "https://ethicalconsumer.org", Reason: "Ethics & privacy ratings for products and brands"},
			{Name: "DuckDuckGo Shopping", URL: "https://duckduckgo.com", Reason: "Private search for products without tracking"},
			{Name: "Local Shops", URL: "https://www.shoplocal.com", Reason: "Support local businesses, fewer data collection practices"},
		},
	},
	severity.ServiceFinance: {
		DisplayName: "Finance & Banking",
		Suggestions: []Suggestion{
			{Name: "Credit Unions", URL: "https://mycreditunion.gov", Reason: "Non-profit, member-owned, community-focused banking"},
			{Name: "GnuCash", URL: "https://gnucash.org", Reason: "Open source personal finance tracking, local-only data"},
		},
	},
	severity.ServiceMapsNavigation: {
		DisplayName: "Maps & Navigation",
		Suggestions: []Suggestion{
			{Name: "OsmAnd", URL: "https://osmand.net", Reason: "Offline maps, open source, based on OpenStreetMap, no tracking"},
			{Name: "Organic Maps", URL: "https://organicmaps.app", Reason: "Offline-first, no ads, no tracking, open source"},
			{Name: "OpenStreetMap", URL: "https://openstreetmap.org", Reason: "Community-built maps, no corporate tracking"},
		},
	},
	severity.ServiceCodeHosting: {
		DisplayName: "Code Hosting",
		Suggestions: []Suggestion{
			{Name: "Codeberg", URL: "https://codeberg.org", Reason: "Non-profit, open source Gitea instance, EU-based, no tracking"},
			{Name: "Sourcehut", URL: "https://sr.ht", Reason: "Minimalist, no JavaScript required, mailing list workflow"},
			{Name: "Gitea", URL: "https://gitea.io", Reason: "Self-hostable Git service, lightweight, open source"},
		},
	},
	severity.ServiceUnknown: {
		DisplayName: "Online Service",
		Suggestions: []Suggestion{
			{Name: "Privacy Guides", URL: "https://privacyguides.org", Reason: "Comprehensive resource for privacy-respecting alternatives"},
			{Name: "AlternativeTo", URL: "https://alternativeto.net", Reason: "Find alternatives filtered by privacy/open source"},
			{Name: "PRISM Break", URL: "https://prism-break.org", Reason: "Curated list of anti-surveillance tools and services"},
		},
	},
}
