package registry

// Static feed tables. Sources are grouped per language, then per category
// key; order within a category is the fetch fan-out order.

var englishFeeds = FeedSet{
	"all": {
		{URL: "http://feeds.bbci.co.uk/news/world/rss.xml", Source: "BBC"},
		{URL: "https://timesofindia.indiatimes.com/rssfeedstopstories.cms", Source: "TOI"},
		{URL: "https://www.ndtv.com/rss/top-stories", Source: "NDTV"},
		{URL: "https://rss.nytimes.com/services/xml/rss/nyt/World.xml", Source: "NYT"},
	},
	"business": {
		{URL: "http://feeds.bbci.co.uk/news/business/rss.xml", Source: "BBC Biz"},
		{URL: "https://economictimes.indiatimes.com/rssfeedsdefault.cms", Source: "Economic Times"},
		{URL: "https://www.cnbc.com/id/10001147/device/rss/rss.html", Source: "CNBC"},
	},
	"tech": {
		{URL: "http://feeds.bbci.co.uk/news/technology/rss.xml", Source: "BBC Tech"},
		{URL: "https://techcrunch.com/feed/", Source: "TechCrunch"},
		{URL: "https://www.theverge.com/rss/index.xml", Source: "The Verge"},
	},
	"sports": {
		{URL: "http://feeds.bbci.co.uk/sport/rss.xml", Source: "BBC Sport"},
		{URL: "https://www.espn.com/espn/rss/news", Source: "ESPN"},
		{URL: "https://www.skysports.com/rss/12040", Source: "Sky Sports"},
	},
	"entertainment": {
		{URL: "https://www.hollywoodreporter.com/feed/", Source: "Hollywood Reporter"},
		{URL: "https://www.eonline.com/syndication/feeds/rssfeeds/topstories.xml", Source: "E! Online"},
	},
	"science": {
		{URL: "http://feeds.bbci.co.uk/news/science_and_environment/rss.xml", Source: "BBC Science"},
		{URL: "https://www.sciencedaily.com/rss/top_news.xml", Source: "ScienceDaily"},
	},
	"health": {
		{URL: "http://feeds.bbci.co.uk/news/health/rss.xml", Source: "BBC Health"},
		{URL: "https://www.healthline.com/feed", Source: "Healthline"},
	},
}

var hindiFeeds = FeedSet{
	"all": {
		{URL: "https://feeds.bbci.co.uk/hindi/rss.xml", Source: "BBC Hindi"},
		{URL: "https://khabar.ndtv.com/rss/top-stories", Source: "NDTV India"},
		{URL: "https://www.aajtak.in/rss/top-stories", Source: "Aaj Tak"},
		{URL: "https://www.jagran.com/rss/news-national-hindi.xml", Source: "Dainik Jagran"},
	},
	"business": {
		{URL: "https://www.aajtak.in/rss/business", Source: "Aaj Tak Biz"},
		{URL: "https://www.jagran.com/rss/business-hindi.xml", Source: "Jagran Biz"},
		{URL: "https://zeenews.india.com/hindi/rss/business.xml", Source: "Zee Biz"},
	},
	"tech": {
		{URL: "https://www.aajtak.in/rss/tech", Source: "Aaj Tak Tech"},
		{URL: "https://www.jagran.com/rss/technology-hindi.xml", Source: "Jagran Tech"},
		{URL: "https://gadgets360.com/rss/hindi/news", Source: "Gadgets360"},
	},
	"sports": {
		{URL: "https://www.aajtak.in/rss/sports", Source: "Aaj Tak Sports"},
		{URL: "https://www.jagran.com/rss/cricket-hindi.xml", Source: "Jagran Cricket"},
		{URL: "https://zeenews.india.com/hindi/rss/sports-news.xml", Source: "Zee Sports"},
	},
	"entertainment": {
		{URL: "https://www.aajtak.in/rss/movie-masala", Source: "Aaj Tak Ent"},
		{URL: "https://www.jagran.com/rss/entertainment-hindi.xml", Source: "Jagran Ent"},
	},
	"science": {
		// Jagran mixes science into its technology feed
		{URL: "https://www.jagran.com/rss/technology-hindi.xml", Source: "Jagran Tech/Sci"},
		{URL: "https://feeds.bbci.co.uk/hindi/rss.xml", Source: "BBC Hindi"},
	},
	"health": {
		{URL: "https://www.jagran.com/rss/lifestyle-health-hindi.xml", Source: "Jagran Health"},
		{URL: "https://www.livehindustan.com/rss/lifestyle/health", Source: "Live Hindustan"},
	},
}

var tamilFeeds = FeedSet{
	"all": {
		{URL: "https://tamil.oneindia.com/rss/tamil-news-fb.xml", Source: "OneIndia Tamil"},
		{URL: "https://feeds.bbci.co.uk/tamil/rss.xml", Source: "BBC Tamil"},
	},
	"business":      {{URL: "https://tamil.goodreturns.in/rss/tamil-business-fb.xml", Source: "GoodReturns Tamil"}},
	"sports":        {{URL: "https://tamil.mykhel.com/rss/tamil-sports-fb.xml", Source: "MyKhel Tamil"}},
	"entertainment": {{URL: "https://tamil.filmibeat.com/rss/tamil-filmibeat-fb.xml", Source: "Filmibeat Tamil"}},
	"tech":          {{URL: "https://tamil.gizbot.com/rss/tamil-gizbot-fb.xml", Source: "Gizbot Tamil"}},
}

var teluguFeeds = FeedSet{
	"all": {
		{URL: "https://telugu.oneindia.com/rss/telugu-news-fb.xml", Source: "OneIndia Telugu"},
		{URL: "https://feeds.bbci.co.uk/telugu/rss.xml", Source: "BBC Telugu"},
	},
	"business":      {{URL: "https://telugu.goodreturns.in/rss/telugu-business-fb.xml", Source: "GoodReturns Telugu"}},
	"sports":        {{URL: "https://telugu.mykhel.com/rss/telugu-sports-fb.xml", Source: "MyKhel Telugu"}},
	"entertainment": {{URL: "https://telugu.filmibeat.com/rss/telugu-filmibeat-fb.xml", Source: "Filmibeat Telugu"}},
	"tech":          {{URL: "https://telugu.gizbot.com/rss/telugu-gizbot-fb.xml", Source: "Gizbot Telugu"}},
}

var kannadaFeeds = FeedSet{
	"all":           {{URL: "https://kannada.oneindia.com/rss/kannada-news-fb.xml", Source: "OneIndia Kannada"}},
	"business":      {{URL: "https://kannada.goodreturns.in/rss/kannada-business-fb.xml", Source: "GoodReturns Kannada"}},
	"sports":        {{URL: "https://kannada.mykhel.com/rss/kannada-sports-fb.xml", Source: "MyKhel Kannada"}},
	"entertainment": {{URL: "https://kannada.filmibeat.com/rss/kannada-filmibeat-fb.xml", Source: "Filmibeat Kannada"}},
	"tech":          {{URL: "https://kannada.gizbot.com/rss/kannada-gizbot-fb.xml", Source: "Gizbot Kannada"}},
}

var malayalamFeeds = FeedSet{
	"all":           {{URL: "https://malayalam.oneindia.com/rss/malayalam-news-fb.xml", Source: "OneIndia Malayalam"}},
	"business":      {{URL: "https://malayalam.goodreturns.in/rss/malayalam-business-fb.xml", Source: "GoodReturns Malayalam"}},
	"sports":        {{URL: "https://malayalam.mykhel.com/rss/malayalam-sports-fb.xml", Source: "MyKhel Malayalam"}},
	"entertainment": {{URL: "https://malayalam.filmibeat.com/rss/malayalam-filmibeat-fb.xml", Source: "Filmibeat Malayalam"}},
	"tech":          {{URL: "https://malayalam.gizbot.com/rss/malayalam-gizbot-fb.xml", Source: "Gizbot Malayalam"}},
}

var bengaliFeeds = FeedSet{
	"all": {
		{URL: "https://bengali.oneindia.com/rss/bengali-news-fb.xml", Source: "OneIndia Bengali"},
		{URL: "https://feeds.bbci.co.uk/bengali/rss.xml", Source: "BBC Bengali"},
	},
	"sports": {{URL: "https://bengali.mykhel.com/rss/bengali-sports-fb.xml", Source: "MyKhel Bengali"}},
}

var marathiFeeds = FeedSet{
	"all": {
		{URL: "https://marathi.oneindia.com/rss/marathi-news-fb.xml", Source: "OneIndia Marathi"},
		{URL: "https://feeds.bbci.co.uk/marathi/rss.xml", Source: "BBC Marathi"},
	},
	"sports": {{URL: "https://marathi.mykhel.com/rss/marathi-sports-fb.xml", Source: "MyKhel Marathi"}},
}

var gujaratiFeeds = FeedSet{
	"all": {
		{URL: "https://gujarati.oneindia.com/rss/gujarati-news-fb.xml", Source: "OneIndia Gujarati"},
		{URL: "https://feeds.bbci.co.uk/gujarati/rss.xml", Source: "BBC Gujarati"},
	},
	"business": {{URL: "https://gujarati.goodreturns.in/rss/gujarati-business-fb.xml", Source: "GoodReturns Gujarati"}},
}

var punjabiFeeds = FeedSet{
	"all": {{URL: "https://feeds.bbci.co.uk/punjabi/rss.xml", Source: "BBC Punjabi"}},
}

// translationTargets maps UI language codes to the translation provider's
// codes. Languages with native feed sets appear here too; the provider is
// only consulted for languages the registry cannot serve natively.
var translationTargets = map[string]string{
	"en": "en",
	"hi": "hi",
	"ta": "ta",
	"te": "te",
	"bn": "bn",
	"mr": "mr",
	"gu": "gu",
	"kn": "kn",
	"ml": "ml",
	"pa": "pa",
	"es": "es",
}
