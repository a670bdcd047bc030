package content

// Homepage fallbacks used when the homepage document or a field is missing.
const (
	DefaultHeroTitle       = "阿Ken教練"
	DefaultHeroSubtitle    = "高雄・屏東專業健身教練"
	DefaultHeroDescription = "從零開始也可以，陪你用安全、有效的訓練，慢慢養成穩定運動習慣。"
)

// Profile list fallbacks. Each returns a fresh slice.
func DefaultCertifications() []string { return []string{"後台尚未輸入證照資料..."} }
func DefaultExperience() []string     { return []string{"後台尚未輸入經歷資料..."} }
func DefaultAchievements() []string   { return []string{"後台尚未輸入成績資料..."} }
func DefaultSpecialties() []string    { return []string{"肌力訓練", "增肌減脂"} }

// OtherRegion labels venues without a region.
const OtherRegion = "其他地區"

const (
	homePostLimit        = 3
	homeTestimonialLimit = 3
)
