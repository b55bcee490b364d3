package twitter

import "time"

// User holds the profile fields consumed by the dashboard.
type User struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	Verified    bool      `json:"verified"`
	Followers   int       `json:"followers_count"`
	Following   int       `json:"following_count"`
	TweetCount  int       `json:"tweet_count"`
	ListedCount int       `json:"listed_count"`
}

// Tweet is a single tweet with its public engagement metrics.
type Tweet struct {
	ID          string    `json:"id"`
	Text        string    `json:"text"`
	CreatedAt   time.Time `json:"created_at"`
	AuthorID    string    `json:"author_id,omitempty"`
	Likes       int       `json:"likes"`
	Retweets    int       `json:"retweets"`
	Replies     int       `json:"replies"`
	Impressions int       `json:"impressions,omitempty"`
	Hashtags    []string  `json:"hashtags,omitempty"`
}

// Comparison bundles two users' profiles and recent tweets.
type Comparison struct {
	User1 UserData `json:"user1"`
	User2 UserData `json:"user2"`
}

// UserData pairs a profile with the tweets fetched for it.
type UserData struct {
	Info   *User   `json:"info"`
	Tweets []Tweet `json:"tweets"`
}
