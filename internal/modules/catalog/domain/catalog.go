package domain

// Language is an ISO-639-1 code for which the catalog carries feed sources
type Language string

// Source represents one named external RSS feed
type Source struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Feeds maps a language code to its statically configured feed sources
var Feeds = map[Language][]Source{
	"en": {
		{Name: "BBC", URL: "https://feeds.bbci.co.uk/news/rss.xml"},
		{Name: "The Guardian", URL: "https://www.theguardian.com/world/rss"},
		{Name: "Sky News", URL: "https://feeds.skynews.com/feeds/rss/world.xml"},
		{Name: "Al Jazeera", URL: "https://www.aljazeera.com/xml/rss/all.xml"},
		{Name: "CNN", URL: "http://rss.cnn.com/rss/edition.rss"},
		{Name: "NPR World", URL: "https://feeds.npr.org/1004/rss.xml"},
		{Name: "NYTimes World", URL: "https://rss.nytimes.com/services/xml/rss/nyt/World.xml"},
		{Name: "Financial Times World", URL: "https://www.ft.com/world?format=rss"},
		{Name: "PBS NewsHour", URL: "https://www.pbs.org/newshour/feeds/rss/headlines"},
		{Name: "Politico", URL: "https://www.politico.com/rss/politics-news.xml"},
		{Name: "The Verge", URL: "https://www.theverge.com/rss/index.xml"},
		{Name: "CBC World", URL: "https://www.cbc.ca/cmlink/rss-world"},
		{Name: "DW (Deutsche Welle)", URL: "https://rss.dw.com/rdf/rss-en-all"},
		{Name: "ABC News World (US)", URL: "https://abcnews.go.com/abcnews/internationalheadlines"},
		{Name: "The Independent", URL: "https://www.independent.co.uk/news/world/rss"},
		{Name: "CNBC World", URL: "https://www.cnbc.com/id/100727362/device/rss/rss.html"},
	},
	"ko": {
		{Name: "연합뉴스", URL: "https://www.yna.co.kr/rss"},
		{Name: "KBS 뉴스", URL: "https://news.kbs.co.kr/rss/news/main_news.htm"},
		{Name: "MBC 뉴스", URL: "https://imnews.imbc.com/rss/news/news_00.xml"},
		{Name: "SBS 뉴스", URL: "https://news.sbs.co.kr/news/newsflash.do?plink=RSSREADER&cooper=SBSNEWS"},
		{Name: "한겨레", URL: "https://www.hani.co.kr/rss/"},
		{Name: "경향신문", URL: "https://www.khan.co.kr/rss/rssdata/kh_today.xml"},
		{Name: "조선일보", URL: "https://www.chosun.com/arc/outboundfeeds/rss/?outputType=xml"},
		{Name: "중앙일보", URL: "https://rss.joongang.co.kr/joongang/news"},
		{Name: "동아일보", URL: "https://www.donga.com/rss/"},
		{Name: "매일경제", URL: "https://file.mk.co.kr/news/rss/rss_40300001.xml"},
		{Name: "한국경제", URL: "https://www.hankyung.com/feed/all-news"},
		{Name: "서울신문", URL: "https://www.seoul.co.kr/rss/section.xml"},
		{Name: "세계일보", URL: "https://www.segye.com/rss/allArticle.xml"},
		{Name: "국민일보", URL: "https://rss.kmib.co.kr/rss/news/all.xml"},
		{Name: "YTN", URL: "https://www.ytn.co.kr/rss/ytn_all.xml"},
	},
	"ja": {
		{Name: "NHK", URL: "https://www3.nhk.or.jp/rss/news/cat0.xml"},
		{Name: "朝日新聞", URL: "https://www.asahi.com/rss/asahi/newsheadlines.rdf"},
		{Name: "毎日新聞", URL: "https://mainichi.jp/rss/etc/mainichi-flash.rss"},
		{Name: "読売新聞", URL: "https://www.yomiuri.co.jp/rss/yol_all.rdf"},
		{Name: "産経新聞", URL: "https://www.sankei.com/rss/news/flash.xml"},
		{Name: "共同通信(EN)", URL: "https://english.kyodonews.net/rss/news.xml"},
		{Name: "Japan Times", URL: "https://www.japantimes.co.jp/news/rss"},
		{Name: "Nikkei Asia", URL: "https://asia.nikkei.com/rss/feed/nar"},
		{Name: "時事通信", URL: "https://www.jiji.com/rss/ranking.rdf"},
	},
	"fr": {
		{Name: "Le Monde", URL: "https://www.lemonde.fr/rss/une.xml"},
		{Name: "Le Figaro", URL: "https://www.lefigaro.fr/rss/figaro_actualites.xml"},
		{Name: "France 24", URL: "https://www.france24.com/fr/rss"},
		{Name: "Le Parisien", URL: "https://www.leparisien.fr/arc/outboundfeeds/rss/?outputType=xml"},
		{Name: "RFI", URL: "https://www.rfi.fr/fr/rss"},
		{Name: "Libération", URL: "https://www.liberation.fr/arc/outboundfeeds/rss/"},
		{Name: "20 Minutes", URL: "https://www.20minutes.fr/feeds/rss"},
		{Name: "Courrier International", URL: "https://www.courrierinternational.com/feed/all/rss.xml"},
		{Name: "Le Point", URL: "https://www.lepoint.fr/24h-infos/rss.xml"},
		{Name: "Euronews (FR)", URL: "https://fr.euronews.com/rss?level=theme&name=news"},
		{Name: "BFMTV", URL: "https://www.bfmtv.com/rss/info/flux-rss/flux-toutes-les-actualites/"},
		{Name: "Ouest-France", URL: "https://www.ouest-france.fr/rss-en-continu.xml"},
		{Name: "L'Obs", URL: "https://www.nouvelobs.com/rss.xml"},
	},
}

// Labels maps a language code to its display name
var Labels = map[Language]string{
	"en": "English",
	"ko": "한국어",
	"ja": "日本語",
	"fr": "Français",
}

// Order is the display order of supported languages
var Order = []Language{"en", "ko", "ja", "fr"}
