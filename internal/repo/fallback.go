package repo

import (
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/tbourn/bhakti-feed/internal/domain"
)

func n(v int64) *int64 { return &v }

// FallbackDataset returns the built-in content used when the repository has
// no rows for a kind. Rows carry no created_at so their scores do not drift
// with the clock.
func FallbackDataset() domain.Dataset {
	return domain.Dataset{
		Posts: []domain.Post{
			{ID: "mock-post-1", Caption: "Morning abhishekam at Meenakshi Amman Temple 🙏", MediaURL: "https://images.unsplash.com/photo-1582510003544-4d00b7f74220", MediaType: "image", Region: "tamil_nadu", Language: "tamil", Deity: "shiva", LikesCount: n(2340), CommentsCount: n(89)},
			{ID: "mock-post-2", Caption: "Tirumala darshan after a long wait. Govinda Govinda!", MediaURL: "https://images.unsplash.com/photo-1621427642261-1b0a8b3c4f6b", MediaType: "image", Region: "andhra_pradesh", Language: "telugu", Deity: "vishnu", LikesCount: n(5120), CommentsCount: n(240)},
			{ID: "mock-post-3", Caption: "Ganesh Chaturthi preparations at home", MediaURL: "https://images.unsplash.com/photo-1567591370504-80e8b4b1e4d4", MediaType: "image", Region: "maharashtra", Language: "marathi", Deity: "ganesh", LikesCount: n(1870), CommentsCount: n(64)},
			{ID: "mock-post-4", Caption: "Evening aarti on the ghats of Varanasi", MediaURL: "https://images.unsplash.com/photo-1561361058-c24cecae35ca", MediaType: "image", Region: "uttar_pradesh", Language: "hindi", Deity: "shiva", LikesCount: n(8900), CommentsCount: n(310)},
			{ID: "mock-post-5", Caption: "Durga Puja pandal lights, Kolkata", MediaURL: "https://images.unsplash.com/photo-1603228254119-e6a4d095dcd6", MediaType: "image", Region: "west_bengal", Language: "bengali", Deity: "durga", LikesCount: n(4300), CommentsCount: n(150)},
			{ID: "mock-post-6", Caption: "Guruvayur temple elephant procession", MediaURL: "https://images.unsplash.com/photo-1590050752117-238cb0fb12b1", MediaType: "image", Region: "kerala", Language: "malayalam", Deity: "krishna", LikesCount: n(760), CommentsCount: n(28)},
			{ID: "mock-post-7", Caption: "Hanuman Chalisa recitation with family", MediaURL: "https://images.unsplash.com/photo-1609766857041-ed402ea8069a", MediaType: "image", Region: "rajasthan", Language: "hindi", Deity: "hanuman", LikesCount: n(420), CommentsCount: n(12)},
			{ID: "mock-post-8", Caption: "Palani murugan kavadi yatra", MediaURL: "https://images.unsplash.com/photo-1600100397608-f0f0a1a4c6d1", MediaType: "image", Region: "tamil_nadu", Language: "tamil", Deity: "murugan", LikesCount: n(980), CommentsCount: n(33)},
		},
		Reels: []domain.Reel{
			{ID: "mock-reel-1", Caption: "Ganga aarti in 60 seconds", VideoURL: "https://cdn.example.org/reels/ganga-aarti.mp4", ThumbnailURL: "https://images.unsplash.com/photo-1561361058-c24cecae35ca", Region: "uttar_pradesh", Language: "hindi", Deity: "shiva", ViewsCount: n(45000), LikesCount: n(3900)},
			{ID: "mock-reel-2", Caption: "Flute at dawn, Radhe Krishna", VideoURL: "https://cdn.example.org/reels/flute-dawn.mp4", ThumbnailURL: "https://images.unsplash.com/photo-1604608672516-f1b9b1d37076", Region: "uttar_pradesh", Language: "hindi", Deity: "krishna", ViewsCount: n(12000), LikesCount: n(400)},
			{ID: "mock-reel-3", Caption: "Thiruvannamalai girivalam timelapse", VideoURL: "https://cdn.example.org/reels/girivalam.mp4", ThumbnailURL: "https://images.unsplash.com/photo-1582510003544-4d00b7f74220", Region: "tamil_nadu", Language: "tamil", Deity: "shiva", ViewsCount: n(8700), LikesCount: n(610)},
			{ID: "mock-reel-4", Caption: "Lalbaugcha Raja first look", VideoURL: "https://cdn.example.org/reels/lalbaug.mp4", ThumbnailURL: "https://images.unsplash.com/photo-1567591370504-80e8b4b1e4d4", Region: "maharashtra", Language: "marathi", Deity: "ganesh", ViewsCount: n(98000), LikesCount: n(7600)},
			{ID: "mock-reel-5", Caption: "Bathukamma songs", VideoURL: "https://cdn.example.org/reels/bathukamma.mp4", ThumbnailURL: "https://images.unsplash.com/photo-1605649487212-47bdab064df7", Region: "telangana", Language: "telugu", Deity: "durga", ViewsCount: n(3100), LikesCount: n(95)},
			{ID: "mock-reel-6", Caption: "Sabarimala trek, swamiye saranam ayyappa", VideoURL: "https://cdn.example.org/reels/sabarimala.mp4", ThumbnailURL: "https://images.unsplash.com/photo-1590050752117-238cb0fb12b1", Region: "kerala", Language: "malayalam", Deity: "other", ViewsCount: n(26000), LikesCount: n(1500)},
		},
		Music: []domain.MusicTrack{
			{ID: "mock-music-1", Title: "Om Jai Jagdish Hare Aarti", Artist: "Anuradha Paudwal", Category: "aarti", CoverURL: "https://images.unsplash.com/photo-1514525253161-7a46d19cd819", Duration: 372, Region: "uttar_pradesh", Language: "hindi", Deity: "vishnu", PlayCount: n(1200000)},
			{ID: "mock-music-2", Title: "Shiva Tandava Stotram", Artist: "Shankar Mahadevan", Category: "stotram", CoverURL: "https://images.unsplash.com/photo-1470225620780-dba8ba36b745", Duration: 489, Region: "karnataka", Language: "kannada", Deity: "shiva", PlayCount: n(860000)},
			{ID: "mock-music-3", Title: "Achyutam Keshavam Bhajan", Artist: "Vikram Hazra", Category: "bhajan", CoverURL: "https://images.unsplash.com/photo-1511379938547-c1f69419868d", Duration: 305, Region: "gujarat", Language: "gujarati", Deity: "krishna", PlayCount: n(420000)},
			{ID: "mock-music-4", Title: "Suprabhatam", Artist: "M. S. Subbulakshmi", Category: "stotram", CoverURL: "https://images.unsplash.com/photo-1507838153414-b4b713384a76", Duration: 1210, Region: "andhra_pradesh", Language: "telugu", Deity: "vishnu", PlayCount: n(2500000)},
			{ID: "mock-music-5", Title: "Kanda Sashti Kavasam", Artist: "Sulamangalam Sisters", Category: "kavasam", CoverURL: "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f", Duration: 1080, Region: "tamil_nadu", Language: "tamil", Deity: "murugan", PlayCount: n(980000)},
			{ID: "mock-music-6", Title: "Hanuman Chalisa - Power of Devotion", Artist: "Hariharan", Category: "chalisa", CoverURL: "https://images.unsplash.com/photo-1459749411175-04bf5292ceea", Duration: 590, Region: "rajasthan", Language: "hindi", Deity: "hanuman", PlayCount: n(3100000)},
			{ID: "mock-music-7", Title: "Aigiri Nandini", Artist: "Rajalakshmee Sanjay", Category: "stotram", CoverURL: "https://images.unsplash.com/photo-1487180144351-b8472da7d491", Duration: 420, Region: "west_bengal", Language: "bengali", Deity: "durga", PlayCount: n(640000)},
			{ID: "mock-music-8", Title: "Ganpati Aarti Sukhkarta Dukhharta", Artist: "Lata Mangeshkar", Category: "aarti", CoverURL: "https://images.unsplash.com/photo-1506157786151-b8491531f063", Duration: 260, Region: "maharashtra", Language: "marathi", Deity: "ganesh", PlayCount: n(1500000)},
		},
		Temples: []domain.Temple{
			{ID: "mock-temple-1", Name: "Meenakshi Amman Temple", Description: "Historic temple dedicated to Meenakshi and Sundareswarar.", District: "Madurai", State: "tamil_nadu", Deity: "shiva", Festivals: datatypes.JSONSlice[string]{"Chithirai Thiruvizha", "Maha Shivaratri"}, Images: datatypes.JSONSlice[string]{"https://images.unsplash.com/photo-1582510003544-4d00b7f74220"}, FollowersCount: n(125000)},
			{ID: "mock-temple-2", Name: "Sri Venkateswara Temple", Description: "Hill shrine of Lord Venkateswara at Tirumala.", Address: "Tirumala, Tirupati", District: "Tirupati", State: "andhra_pradesh", Deity: "vishnu", Festivals: datatypes.JSONSlice[string]{"Brahmotsavam", "Vaikunta Ekadasi"}, Images: datatypes.JSONSlice[string]{"https://images.unsplash.com/photo-1621427642261-1b0a8b3c4f6b"}, FollowersCount: n(480000)},
			{ID: "mock-temple-3", Name: "Kashi Vishwanath Temple", Description: "One of the twelve Jyotirlingas, on the banks of the Ganga.", District: "Varanasi", State: "uttar_pradesh", Deity: "shiva", Festivals: datatypes.JSONSlice[string]{"Maha Shivaratri", "Dev Deepawali"}, Images: datatypes.JSONSlice[string]{"https://images.unsplash.com/photo-1561361058-c24cecae35ca"}, FollowersCount: n(390000)},
			{ID: "mock-temple-4", Name: "Siddhivinayak Temple", Description: "Beloved Ganesh temple in Prabhadevi.", Address: "Prabhadevi, Mumbai", District: "Mumbai", State: "maharashtra", Deity: "ganesh", Festivals: datatypes.JSONSlice[string]{"Ganesh Chaturthi", "Angarki Chaturthi"}, Images: datatypes.JSONSlice[string]{"https://images.unsplash.com/photo-1567591370504-80e8b4b1e4d4"}, FollowersCount: n(210000)},
			{ID: "mock-temple-5", Name: "Kalighat Kali Temple", Description: "Shakti peetha dedicated to Goddess Kali.", District: "Kolkata", State: "west_bengal", Deity: "durga", Festivals: datatypes.JSONSlice[string]{"Durga Puja", "Navratri"}, Images: datatypes.JSONSlice[string]{"https://images.unsplash.com/photo-1603228254119-e6a4d095dcd6"}, FollowersCount: n(87000)},
			{ID: "mock-temple-6", Name: "Guruvayur Sri Krishna Temple", Description: "Home of Guruvayurappan, the child form of Krishna.", District: "Thrissur", State: "kerala", Deity: "krishna", Festivals: datatypes.JSONSlice[string]{"Ulsavam", "Janmashtami"}, Images: datatypes.JSONSlice[string]{"https://images.unsplash.com/photo-1590050752117-238cb0fb12b1"}, FollowersCount: n(43000)},
		},
	}
}

// Seed inserts ds into the content tables when all of them are empty. It
// reports whether anything was written.
func Seed(ctx context.Context, db *gorm.DB, ds domain.Dataset) (bool, error) {
	stats, err := Stats(ctx, db)
	if err != nil {
		return false, err
	}
	if !stats.Empty() {
		return false, nil
	}
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(ds.Posts) > 0 {
			if err := tx.Create(&ds.Posts).Error; err != nil {
				return err
			}
		}
		if len(ds.Reels) > 0 {
			if err := tx.Create(&ds.Reels).Error; err != nil {
				return err
			}
		}
		if len(ds.Music) > 0 {
			if err := tx.Create(&ds.Music).Error; err != nil {
				return err
			}
		}
		if len(ds.Temples) > 0 {
			if err := tx.Create(&ds.Temples).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return err == nil, err
}
