package service

// RobotsFallback is served when the indexing flag cannot be read.
const RobotsFallback = "User-agent: *\nAllow: /"

// RobotsBody renders robots.txt. baseURL is scheme://host of the site.
func RobotsBody(indexing bool, baseURL string) string {
	if !indexing {
		return "User-agent: *\nDisallow: /"
	}
	return "User-agent: *\nAllow: /\n\nSitemap: " + baseURL + "/sitemap.xml"
}
