// Package rss はフィードアイテム列をRSS 2.0ドキュメントに直列化する。
// テキストフィールドのエスケープはencoding/xmlのマーシャリングに委ねる。
// 予約文字（& < > " '）はすべて実体参照に置換される。
package rss

import (
	"encoding/xml"
	"time"

	"github.com/hitoshi/rssbible/internal/schedule"
)

// rfc822Format はRSS 2.0のpubDate形式（RFC 822、4桁年）。
const rfc822Format = "Mon, 02 Jan 2006 15:04:05 -0700"

// atomNamespace はatom:linkセルフリンク拡張の名前空間。
const atomNamespace = "http://www.w3.org/2005/Atom"

// Metadata はチャンネルヘッダーのメタデータ。
type Metadata struct {
	Title          string
	Description    string
	SiteLink       string // チャンネルの正準リンク（サニタイズ済み値から構築）
	FeedLink       string // フィード自身を指すセルフリンク
	Language       string
	ManagingEditor string
	WebMaster      string
	Copyright      string
	PubDate        time.Time
	TTLMinutes     int
	ImageURL       string
}

// --- 直列化用の内部構造体 ---

type rssDocument struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	AtomNS  string     `xml:"xmlns:atom,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title          string    `xml:"title"`
	Link           string    `xml:"link"`
	Description    string    `xml:"description"`
	AtomLink       atomLink  `xml:"atom:link"`
	Language       string    `xml:"language,omitempty"`
	ManagingEditor string    `xml:"managingEditor,omitempty"`
	WebMaster      string    `xml:"webMaster,omitempty"`
	Copyright      string    `xml:"copyright,omitempty"`
	PubDate        string    `xml:"pubDate"`
	TTL            int       `xml:"ttl"`
	Image          *rssImage `xml:"image,omitempty"`
	Items          []rssItem `xml:"item"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

type rssImage struct {
	URL   string `xml:"url"`
	Title string `xml:"title"`
	Link  string `xml:"link"`
}

type rssItem struct {
	Title       string  `xml:"title"`
	Description string  `xml:"description"`
	Link        string  `xml:"link"`
	Author      string  `xml:"author"`
	GUID        rssGUID `xml:"guid"`
	PubDate     string  `xml:"pubDate"`
}

// rssGUID はアイテムの一意識別子。独自のID体系は持たず、
// 閲覧サービスURLをパーマリンクとしてそのまま使用する。
type rssGUID struct {
	IsPermaLink string `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

// RenderFeed はメタデータとアイテム列をRSS 2.0ドキュメントに直列化する。
// 全域関数であり、空のアイテム列でもアイテム0件の有効なフィードを返す。
func RenderFeed(meta Metadata, items []schedule.FeedItem) []byte {
	channel := rssChannel{
		Title:       meta.Title,
		Link:        meta.SiteLink,
		Description: meta.Description,
		AtomLink: atomLink{
			Href: meta.FeedLink,
			Rel:  "self",
			Type: "application/rss+xml",
		},
		Language:       meta.Language,
		ManagingEditor: meta.ManagingEditor,
		WebMaster:      meta.WebMaster,
		Copyright:      meta.Copyright,
		PubDate:        meta.PubDate.Format(rfc822Format),
		TTL:            meta.TTLMinutes,
		Items:          make([]rssItem, 0, len(items)),
	}

	if meta.ImageURL != "" {
		channel.Image = &rssImage{
			URL:   meta.ImageURL,
			Title: meta.Title,
			Link:  meta.SiteLink,
		}
	}

	for _, item := range items {
		channel.Items = append(channel.Items, rssItem{
			Title:       item.Title,
			Description: item.Description,
			Link:        item.Link,
			Author:      item.Author,
			GUID:        rssGUID{IsPermaLink: "true", Value: item.Link},
			PubDate:     item.PubDate.Format(rfc822Format),
		})
	}

	doc := rssDocument{
		Version: "2.0",
		AtomNS:  atomNamespace,
		Channel: channel,
	}

	// 固定形状の構造体のみを直列化するため、Marshalは失敗しない。
	data, _ := xml.MarshalIndent(doc, "", "  ")

	out := make([]byte, 0, len(xml.Header)+len(data)+1)
	out = append(out, xml.Header...)
	out = append(out, data...)
	out = append(out, '\n')
	return out
}
