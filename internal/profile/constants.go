package profile

// Working rectangle for random pointer targets.
const (
	screenMinX = 100
	screenMaxX = 1000
	screenMinY = 100
	screenMaxY = 800
)

// Guard and failure handling, in milliseconds unless noted.
const (
	guardSlackSeconds = 2.0
	pauseMinMs        = 5000
	pauseMaxMs        = 10000
	backoffMinMs      = 5000
	backoffMaxMs      = 10000
)

// Shared pauses.
const (
	settleMinMs = 500
	settleMaxMs = 1500
)

// Reading profile.
const (
	readingOpenChance    = 0.6
	readingMaxOpenTabs   = 2
	pageLoadMinMs        = 4000
	pageLoadMaxMs        = 8000
	readingCycleMinMs    = 1000
	readingCycleMaxMs    = 2000
	scrollMinCount       = 2
	scrollMaxCount       = 10
	longReadChance       = 0.2
	longReadMinMs        = 3000
	longReadMaxMs        = 10000
	overscrollChance     = 0.15
	overscrollMinPresses = 1
	overscrollMaxPresses = 3
	overscrollMinMs      = 200
	overscrollMaxMs      = 600
	smallScrollChance    = 0.7
	wiggleChance         = 0.4
	scrollPauseMinMs     = 1000
	scrollPauseMaxMs     = 4000
)

// Coding profile.
const (
	codingClickChance = 0.4
	microBreakChance  = 0.15
	microBreakMinMs   = 2000
	microBreakMaxMs   = 8000
	codingCycleChance = 0.4
	codingCycleMinMs  = 1000
	codingCycleMaxMs  = 3000
	editorTabChance   = 0.5
	editorPauseMinMs  = 2000
	editorPauseMaxMs  = 5000
	cursorMinMoves    = 2
	cursorMaxMoves    = 6
	cursorPauseMinMs  = 300
	cursorPauseMaxMs  = 800
	snippetChance     = 0.4
	snippetPauseMinMs = 500
	snippetPauseMaxMs = 1000
)

// Humanlike typing.
const (
	typoChance     = 0.02
	typoFixMinMs   = 100
	typoFixMaxMs   = 300
	keystrokeMinMs = 30
	keystrokeMaxMs = 150
)

// DefaultReadingURLs are opened when no custom URLs are configured.
var DefaultReadingURLs = []string{
	"https://docs.aws.amazon.com/",
	"https://kubernetes.io/docs/home/",
	"https://docs.docker.com/",
	"https://www.terraform.io/docs",
	"https://docs.ansible.com/",
	"https://docs.github.com/en/actions",
	"https://prometheus.io/docs/introduction/overview/",
	"https://grafana.com/docs/",
}

// ShellSnippets are typed by the coding profile.
var ShellSnippets = []string{
	`echo "Checking system logs..."`,
	`grep -r "ERROR" /var/log/`,
	`find . -name "*.go" -type f`,
	`chmod +x deploy.sh`,
	`tar -czvf backup.tar.gz /var/www/`,
	`docker compose up -d`,
	`git status`,
	`git diff`,
}
