package entity

// PostAuthor identifies the author of a community post.
type PostAuthor struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	AvatarURL string `json:"avatarUrl"`
}

// CommunityPost is an entry in the professionals' hub feed.
type CommunityPost struct {
	ID        int64      `json:"id"`
	Author    PostAuthor `json:"author"`
	Timestamp string     `json:"timestamp"`
	Content   string     `json:"content"`
	ImageURL  string     `json:"imageUrl,omitempty"`
	Likes     int        `json:"likes"`
	Comments  int        `json:"comments"`
}

// BlogPost is an editorial article.
type BlogPost struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	ImageURL string `json:"imageUrl"`
	Author   string `json:"author"`
	Date     string `json:"date"`
}

// GlobalProject is a landmark architectural work shown for inspiration.
type GlobalProject struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Architect   string `json:"architect"`
	Location    string `json:"location"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description"`
}

// InspirationSource is a renowned designer featured on the inspirations page.
type InspirationSource struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Style    string `json:"style"`
	ImageURL string `json:"imageUrl"`
	Bio      string `json:"bio"`
}
