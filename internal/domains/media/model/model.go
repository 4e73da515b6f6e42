package model

const EntityName = "media"

// Directories images are stored under, one per owning entity.
const (
	DirectoryHotel    = "hotels"
	DirectoryRoom     = "rooms"
	DirectoryActivity = "activities"
	DirectoryBlog     = "blogs"
	DirectoryGeneral  = "media"
)

var Directories = []string{DirectoryHotel, DirectoryRoom, DirectoryActivity, DirectoryBlog, DirectoryGeneral}
