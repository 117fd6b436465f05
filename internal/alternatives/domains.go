package alternatives

import "github.com/ssudhiravinesh/blindsight/internal/severity"

// domainCategories maps well-known hostnames to service categories for
// classification when the analysis could not name one. Subdomain entries
// take precedence over their registered domain.
var domainCategories = map[string]severity.ServiceCategory{
	// search
	"google.com": severity.ServiceSearch,
	"bing.com":   severity.ServiceSearch,
	"yahoo.com":  severity.ServiceSearch,
	"baidu.com":  severity.ServiceSearch,
	"yandex.com": severity.ServiceSearch,

	// email
	"gmail.com":      severity.ServiceEmail,
	"outlook.com":    severity.ServiceEmail,
	"mail.yahoo.com": severity.ServiceEmail,
	"aol.com":        severity.ServiceEmail,
	"zoho.com":       severity.ServiceEmail,

	// social media
	"facebook.com":  severity.ServiceSocialMedia,
	"instagram.com": severity.ServiceSocialMedia,
	"twitter.com":   severity.ServiceSocialMedia,
	"x.com":         severity.ServiceSocialMedia,
	"linkedin.com":  severity.ServiceSocialMedia,
	"tiktok.com":    severity.ServiceSocialMedia,
	"snapchat.com":  severity.ServiceSocialMedia,
	"pinterest.com": severity.ServiceSocialMedia,
	"tumblr.com":    severity.ServiceSocialMedia,
	"threads.net":   severity.ServiceSocialMedia,

	// messaging
	"whatsapp.com":  severity.ServiceMessaging,
	"telegram.org":  severity.ServiceMessaging,
	"discord.com":   severity.ServiceMessaging,
	"slack.com":     severity.ServiceMessaging,
	"messenger.com": severity.ServiceMessaging,
	"wechat.com":    severity.ServiceMessaging,
	"viber.com":     severity.ServiceMessaging,

	// video conferencing
	"zoom.us":             severity.ServiceVideoConf,
	"meet.google.com":     severity.ServiceVideoConf,
	"teams.microsoft.com": severity.ServiceVideoConf,
	"webex.com":           severity.ServiceVideoConf,

	// video sharing
	"youtube.com":     severity.ServiceVideoSharing,
	"vimeo.com":       severity.ServiceVideoSharing,
	"dailymotion.com": severity.ServiceVideoSharing,

	// streaming video
	"netflix.com":       severity.ServiceStreamingVideo,
	"hulu.com":          severity.ServiceStreamingVideo,
	"disneyplus.com":    severity.ServiceStreamingVideo,
	"primevideo.com":    severity.ServiceStreamingVideo,
	"max.com":           severity.ServiceStreamingVideo,
	"peacocktv.com":     severity.ServiceStreamingVideo,
	"paramountplus.com": severity.ServiceStreamingVideo,
	"crunchyroll.com":   severity.ServiceStreamingVideo,

	// streaming music
	"spotify.com":       severity.ServiceStreamingMusic,
	"music.apple.com":   severity.ServiceStreamingMusic,
	"music.youtube.com": severity.ServiceStreamingMusic,
	"tidal.com":         severity.ServiceStreamingMusic,
	"deezer.com":        severity.ServiceStreamingMusic,
	"soundcloud.com":    severity.ServiceStreamingMusic,
	"pandora.com":       severity.ServiceStreamingMusic,

	// cloud storage
	"drive.google.com":  severity.ServiceCloudStorage,
	"dropbox.com":       severity.ServiceCloudStorage,
	"onedrive.live.com": severity.ServiceCloudStorage,
	"box.com":           severity.ServiceCloudStorage,
	"icloud.com":        severity.ServiceCloudStorage,
	"mega.nz":           severity.ServiceCloudStorage,

	// ecommerce
	"amazon.com":     severity.ServiceEcommerce,
	"amazon.co.uk":   severity.ServiceEcommerce,
	"amazon.co.jp":   severity.ServiceEcommerce,
	"ebay.com":       severity.ServiceEcommerce,
	"walmart.com":    severity.ServiceEcommerce,
	"etsy.com":       severity.ServiceEcommerce,
	"aliexpress.com": severity.ServiceEcommerce,
	"shopify.com":    severity.ServiceEcommerce,
	"wish.com":       severity.ServiceEcommerce,
	"target.com":     severity.ServiceEcommerce,
	"bestbuy.com":    severity.ServiceEcommerce,
	"flipkart.com":   severity.ServiceEcommerce,

	// finance
	"paypal.com":    severity.ServiceFinance,
	"venmo.com":     severity.ServiceFinance,
	"cashapp.com":   severity.ServiceFinance,
	"revolut.com":   severity.ServiceFinance,
	"wise.com":      severity.ServiceFinance,
	"robinhood.com": severity.ServiceFinance,
	"coinbase.com":  severity.ServiceFinance,
	"binance.com":   severity.ServiceFinance,

	// maps
	"maps.google.com": severity.ServiceMapsNavigation,
	"waze.com":        severity.ServiceMapsNavigation,

	// gaming
	"steampowered.com": severity.ServiceGaming,
	"epicgames.com":    severity.ServiceGaming,
	"ea.com":           severity.ServiceGaming,
	"ubisoft.com":      severity.ServiceGaming,
	"roblox.com":       severity.ServiceGaming,

	// password managers
	"lastpass.com":  severity.ServicePasswordManager,
	"1password.com": severity.ServicePasswordManager,
	"dashlane.com":  severity.ServicePasswordManager,

	// notes
	"evernote.com": severity.ServiceNotes,
	"notion.so":    severity.ServiceNotes,

	// AI assistants
	"chat.openai.com":       severity.ServiceAIAssistant,
	"chatgpt.com":           severity.ServiceAIAssistant,
	"gemini.google.com":     severity.ServiceAIAssistant,
	"claude.ai":             severity.ServiceAIAssistant,
	"copilot.microsoft.com": severity.ServiceAIAssistant,

	// code hosting
	"github.com":    severity.ServiceCodeHosting,
	"gitlab.com":    severity.ServiceCodeHosting,
	"bitbucket.org": severity.ServiceCodeHosting,

	// vpn
	"nordvpn.com":       severity.ServiceVPN,
	"expressvpn.com":    severity.ServiceVPN,
	"surfshark.com":     severity.ServiceVPN,
	"cyberghostvpn.com": severity.ServiceVPN,

	// dns
	"cloudflare.com": severity.ServiceDNS,

	// forum
	"reddit.com": severity.ServiceForum,
}
