package service

import (
	"encoding/xml"
	"fmt"

	"tubeseo-go/internal/repository"
)

// RobotsTxt robots.txt 固定内容
const RobotsTxt = "User-agent: *\nAllow: /\nSitemap: /sitemap.xml"

// sitemapURL 站点地图单条记录
type sitemapURL struct {
	Loc      string `xml:"loc"`
	Priority string `xml:"priority"`
}

// urlSet sitemaps.org 的 urlset 根节点
type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type SitemapService struct {
	videoRepo *repository.VideoRepository
	blogRepo  *repository.BlogRepository
	baseURL   string
}

func NewSitemapService(videoRepo *repository.VideoRepository, blogRepo *repository.BlogRepository, baseURL string) *SitemapService {
	return &SitemapService{videoRepo: videoRepo, blogRepo: blogRepo, baseURL: baseURL}
}

// BuildSitemap 生成站点地图：两条固定入口 + 每个视频 + 每篇文章。
// 权重固定：首页 1.0、博客首页 0.8、视频页 0.7、文章页 0.6。
// 标识符经 XML 编码器转义后写入，结构部分是固定样板。
func (s *SitemapService) BuildSitemap() (string, error) {
	youtubeIDs, err := s.videoRepo.ListYoutubeIDs()
	if err != nil {
		return "", err
	}
	slugs, err := s.blogRepo.ListSlugs()
	if err != nil {
		return "", err
	}

	set := urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []sitemapURL{
			{Loc: s.baseURL + "/", Priority: "1.0"},
			{Loc: s.baseURL + "/blog", Priority: "0.8"},
		},
	}
	for _, id := range youtubeIDs {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:      fmt.Sprintf("%s/video/%s", s.baseURL, id),
			Priority: "0.7",
		})
	}
	for _, slug := range slugs {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:      fmt.Sprintf("%s/blog/%s", s.baseURL, slug),
			Priority: "0.6",
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return "", err
	}

	return xml.Header + string(body), nil
}
