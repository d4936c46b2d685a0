package memstore

import (
	"time"

	"turriva/internal/domain/entity"
	"turriva/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// seedPassword is the credential of every seeded demo account.
const seedPassword = "password"

// seed loads the curated fixture: demo accounts, the bilingual directory,
// portfolio, shop, listings, and editorial content.
func (s *Store) seed(hasher service.PasswordHasher) error {
	hash, err := hasher.Hash(seedPassword)
	if err != nil {
		return errors.Wrap(err, "hash seed password")
	}

	now := time.Now()
	s.users = []*entity.User{
		{ID: uuid.New(), Name: "John Doe", Email: "john@example.com", PasswordHash: hash,
			Role: entity.RoleProfessional, Membership: entity.MembershipPro, CreatedAt: now},
		{ID: uuid.New(), Name: "Jane Smith", Email: "jane@example.com", PasswordHash: hash,
			Role: entity.RoleClient, Membership: entity.MembershipFree, CreatedAt: now},
		{ID: uuid.New(), Name: "Vendor Shop", Email: "vendor@example.com", PasswordHash: hash,
			Role: entity.RoleVendor, Membership: entity.MembershipBusiness, StoreID: "store-1", CreatedAt: now},
	}

	s.seedDirectory()
	s.seedPortfolio()
	s.seedShop()
	s.seedListings()
	s.seedContent()

	return nil
}

func (s *Store) seedDirectory() {
	s.profiles = map[entity.Language][]*entity.Profile{
		entity.LanguageArabic: {
			{ID: 101, Name: "شركة البناء الحديث", Specialty: "مقاولات عامة", Location: "الرياض", Rating: 4.8,
				ImageURL: "https://images.pexels.com/photos/2219024/pexels-photo-2219024.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
				IsVerified: true, Category: entity.DirectoryContracting, PortfolioProjectIDs: []string{"proj-1", "proj-4"},
				Bio: "رواد في مجال المقاولات العامة...", Services: []string{"بناء فلل", "تشطيبات", "ترميم"}},
			{ID: 102, Name: "استوديو التصميم المبدع", Specialty: "تصميم داخلي", Location: "جدة", Rating: 4.9,
				ImageURL: "https://images.pexels.com/photos/1571460/pexels-photo-1571460.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
				IsVerified: true, Category: entity.DirectoryDecor, PortfolioProjectIDs: []string{"proj-2"},
				Bio: "نخلق مساحات تعكس شخصيتك...", Services: []string{"تصميم سكني", "تصميم تجاري"}},
			{ID: 103, Name: "مكتب الرؤية الهندسية", Specialty: "استشارات هندسية", Location: "الدمام", Rating: 4.7,
				ImageURL: "https://images.pexels.com/photos/3861958/pexels-photo-3861958.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
				IsVerified: false, Category: entity.DirectoryEngineering, PortfolioProjectIDs: []string{"proj-3"},
				Bio: "حلول هندسية متكاملة...", Services: []string{"إشراف هندسي", "تصاميم معمارية"}},
			{ID: 104, Name: "شركة التطوير العقاري المتحدة", Specialty: "تطوير عقاري", Location: "الرياض", Rating: 4.9,
				ImageURL: "https://images.pexels.com/photos/2227832/pexels-photo-2227832.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
				IsVerified: true, Category: entity.DirectoryRealEstateDevelopers, PortfolioProjectIDs: []string{},
				Bio: "نبني المستقبل.", Services: []string{"تطوير أراضي", "مشاريع سكنية"}},
		},
		entity.LanguageEnglish: {
			{ID: 101, Name: "Modern Construction Co.", Specialty: "General Contracting", Location: "Riyadh", Rating: 4.8,
				ImageURL: "https://images.pexels.com/photos/2219024/pexels-photo-2219024.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
				IsVerified: true, Category: entity.DirectoryContracting, PortfolioProjectIDs: []string{"proj-1", "proj-4"},
				Bio: "Pioneers in general contracting...", Services: []string{"Villa Construction", "Finishing", "Renovation"}},
			{ID: 102, Name: "Creative Design Studio", Specialty: "Interior Design", Location: "Jeddah", Rating: 4.9,
				ImageURL: "https://images.pexels.com/photos/1571460/pexels-photo-1571460.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
				IsVerified: true, Category: entity.DirectoryDecor, PortfolioProjectIDs: []string{"proj-2"},
				Bio: "We create spaces that reflect your personality...", Services: []string{"Residential Design", "Commercial Design"}},
			{ID: 103, Name: "Vision Engineering", Specialty: "Engineering Consulting", Location: "Dammam", Rating: 4.7,
				ImageURL: "https://images.pexels.com/photos/3861958/pexels-photo-3861958.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
				IsVerified: false, Category: entity.DirectoryEngineering, PortfolioProjectIDs: []string{"proj-3"},
				Bio: "Integrated engineering solutions...", Services: []string{"Construction Supervision", "Architectural Design"}},
			{ID: 104, Name: "United Real Estate Dev", Specialty: "Real Estate Development", Location: "Riyadh", Rating: 4.9,
				ImageURL: "https://images.pexels.com/photos/2227832/pexels-photo-2227832.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
				IsVerified: true, Category: entity.DirectoryRealEstateDevelopers, PortfolioProjectIDs: []string{},
				Bio: "Building the future.", Services: []string{"Land Development", "Residential Projects"}},
		},
	}

	s.featured = map[entity.Language][]*entity.FeaturedProject{
		entity.LanguageArabic: {
			{ID: 201, Name: "مشروع أبراج الرياض", Developer: "شركة التطوير العقاري المتحدة",
				Description: "مجمع سكني فاخر في قلب الرياض.",
				ImageURL:    "https://images.pexels.com/photos/1105766/pexels-photo-1105766.jpeg",
				Category:    entity.DirectoryOpportunities},
		},
		entity.LanguageEnglish: {
			{ID: 201, Name: "Riyadh Towers Project", Developer: "United Real Estate Development",
				Description: "A luxury residential complex in the heart of Riyadh.",
				ImageURL:    "https://images.pexels.com/photos/1105766/pexels-photo-1105766.jpeg",
				Category:    entity.DirectoryOpportunities},
		},
	}

	s.reviews = map[entity.Language][]*entity.Review{
		entity.LanguageArabic: {
			{ID: 1, ProfileID: 101, AuthorName: "أحمد", AuthorAvatar: "https://randomuser.me/api/portraits/men/1.jpg",
				Rating: 5, Comment: "عمل رائع وتصميم فريد!", Date: "2024-05-10"},
			{ID: 2, ProfileID: 101, AuthorName: "سارة", AuthorAvatar: "https://randomuser.me/api/portraits/women/1.jpg",
				Rating: 4.5, Comment: "احترافية عالية والتزام بالمواعيد.", Date: "2024-04-22"},
		},
		entity.LanguageEnglish: {
			{ID: 1, ProfileID: 101, AuthorName: "Ahmed", AuthorAvatar: "https://randomuser.me/api/portraits/men/1.jpg",
				Rating: 5, Comment: "Great work and unique design!", Date: "2024-05-10"},
			{ID: 2, ProfileID: 101, AuthorName: "Sara", AuthorAvatar: "https://randomuser.me/api/portraits/women/1.jpg",
				Rating: 4.5, Comment: "High professionalism and punctuality.", Date: "2024-04-22"},
		},
	}
}

func (s *Store) seedPortfolio() {
	// Some portfolio works belong to professionals without a directory
	// profile (136-139); detail lookups on those report not found.
	ar := []*entity.PortfolioProject{
		{ID: "proj-1", ProfessionalID: 101, CoverImageURL: "https://images.pexels.com/photos/2089696/pexels-photo-2089696.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			Location: "الرياض", Year: 2023, Category: entity.PortfolioResidential, Style: entity.StyleModern, Title: "فيلا الياسمين",
			Images: []string{
				"https://images.pexels.com/photos/276724/pexels-photo-276724.jpeg",
				"https://images.pexels.com/photos/1571460/pexels-photo-1571460.jpeg",
				"https://images.pexels.com/photos/271816/pexels-photo-271816.jpeg",
			},
			ModelURL: "https://modelviewer.dev/shared-assets/models/Astronaut.glb"},
		{ID: "proj-2", ProfessionalID: 102, CoverImageURL: "https://images.pexels.com/photos/963486/pexels-photo-963486.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			Location: "جدة", Year: 2022, Category: entity.PortfolioCommercial, Style: entity.StyleIndustrial, Title: "كافيه روست", Images: []string{}},
		{ID: "proj-3", ProfessionalID: 103, CoverImageURL: "https://images.pexels.com/photos/261102/pexels-photo-261102.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			Location: "الدمام", Year: 2024, Category: entity.PortfolioOffice, Style: entity.StyleContemporary, Title: "مقر شركة التقنية", Images: []string{}},
		{ID: "proj-4", ProfessionalID: 101, CoverImageURL: "https://images.pexels.com/photos/6438762/pexels-photo-6438762.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			Location: "الرياض", Year: 2021, Category: entity.PortfolioResidential, Style: entity.StyleNeoclassic, Title: "قصر حطين", Images: []string{}},
		{ID: "proj-5", ProfessionalID: 137, CoverImageURL: "https://images.adsttc.com/media/images/5014/1f15/28ba/0d37/0200/0c4c/large_jpg/stringio.jpg?1414578028",
			Location: "الظهران", Year: 2017, Category: entity.PortfolioCommercial, Style: entity.StyleModern, Title: "إثراء", Images: []string{}},
		{ID: "proj-6", ProfessionalID: 136, CoverImageURL: "https://images.pexels.com/photos/17061329/pexels-photo-17061329/free-photo-of-king-abdullah-financial-district-in-riyadh.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			Location: "الرياض", Year: 2020, Category: entity.PortfolioOffice, Style: entity.StyleModern, Title: "كافد", Images: []string{}},
		{ID: "proj-7", ProfessionalID: 138, CoverImageURL: "https://images.pexels.com/photos/16013348/pexels-photo-16013348/free-photo-of-maraya-concert-hall-in-al-ula.jpeg",
			Location: "العلا", Year: 2019, Category: entity.PortfolioEntertainment, Style: entity.StyleContemporary, Title: "مسرح مرايا", Images: []string{}},
		{ID: "proj-8", ProfessionalID: 139, CoverImageURL: "https://images.pexels.com/photos/17698246/pexels-photo-17698246/free-photo-of-diriyah.jpeg",
			Location: "الدرعية", Year: 2022, Category: entity.PortfolioHospitality, Style: entity.StyleNeoclassic, Title: "فندق الدرعية", Images: []string{}},
	}

	enOverrides := []struct {
		location string
		title    string
	}{
		{"Riyadh", "Al Yasmin Villa"},
		{"Jeddah", "Roast Cafe"},
		{"Dammam", "Tech HQ"},
		{"Riyadh", "Hittin Palace"},
		{"Dhahran", "Ithra"},
		{"Riyadh", "KAFD"},
		{"AlUla", "Maraya Hall"},
		{"Diriyah", "Diriyah Hotel"},
	}

	en := make([]*entity.PortfolioProject, 0, len(ar))
	for i, p := range ar {
		clone := *p
		clone.Location = enOverrides[i].location
		clone.Title = enOverrides[i].title
		en = append(en, &clone)
	}

	s.portfolio = map[entity.Language][]*entity.PortfolioProject{
		entity.LanguageArabic:  ar,
		entity.LanguageEnglish: en,
	}
}

func (s *Store) seedShop() {
	s.stores = map[entity.Language][]*entity.Store{
		entity.LanguageArabic: {
			{ID: "store-1", Name: "تسوق منزل زوي ديشانيل وجوناثان سكوت",
				ImageURL:     "https://images.pexels.com/photos/6489107/pexels-photo-6489107.jpeg?auto=compress&cs=tinysrgb&w=800",
				MainImageURL: "https://images.pexels.com/photos/6489107/pexels-photo-6489107.jpeg",
				CollectionTitle: "احصل على المظهر: جوهرة على الطراز الجورجي"},
			{ID: "store-2", Name: "تسوق منزل ميشيل دوكري",
				ImageURL:     "https://images.pexels.com/photos/6585626/pexels-photo-6585626.jpeg?auto=compress&cs=tinysrgb&w=800",
				MainImageURL: "https://images.pexels.com/photos/6585626/pexels-photo-6585626.jpeg",
				CollectionTitle: "سكينة المطبخ الإنجليزي"},
		},
		entity.LanguageEnglish: {
			{ID: "store-1", Name: "Shop Zooey Deschanel & Jonathan Scott's Home",
				ImageURL:     "https://images.pexels.com/photos/6489107/pexels-photo-6489107.jpeg?auto=compress&cs=tinysrgb&w=800",
				MainImageURL: "https://images.pexels.com/photos/6489107/pexels-photo-6489107.jpeg",
				CollectionTitle: "Get the Look: Georgian Gem"},
			{ID: "store-2", Name: "Shop Michelle Dockery's Home",
				ImageURL:     "https://images.pexels.com/photos/6585626/pexels-photo-6585626.jpeg?auto=compress&cs=tinysrgb&w=800",
				MainImageURL: "https://images.pexels.com/photos/6585626/pexels-photo-6585626.jpeg",
				CollectionTitle: "English Kitchen Vibe"},
		},
	}

	s.products = map[entity.Language][]*entity.Product{
		entity.LanguageArabic: {
			{ID: "1", Name: "ثريا زجاجية عتيقة", Price: "3,200 ريال",
				ImageURL: "https://images.pexels.com/photos/7534223/pexels-photo-7534223.jpeg?auto=compress&cs=tinysrgb&w=800",
				Category: entity.ProductDecor, ProductType: entity.ProductPhysical, Subcategory: "إضاءة",
				StoreID: "store-1", StoreName: "تسوق منزل زوي ديشانيل", Retailer: "1stDibs", ExternalURL: "#"},
			{ID: "2", Name: "طاولة قهوة خشبية", Price: "1,800 ريال", OriginalPrice: "2,200 ريال",
				ImageURL: "https://images.pexels.com/photos/775219/pexels-photo-775219.jpeg?auto=compress&cs=tinysrgb&w=800",
				Category: entity.ProductDecor, ProductType: entity.ProductPhysical, Subcategory: "أثاث",
				StoreID: "store-1", StoreName: "تسوق منزل زوي ديشانيل", Retailer: "Pottery Barn", ExternalURL: "#"},
			{ID: "101", Name: "مخطط فيلا مودرن (الرياض)", Price: "499 ريال",
				ImageURL: "https://images.pexels.com/photos/1029611/pexels-photo-1029611.jpeg?auto=compress&cs=tinysrgb&w=800",
				Category: entity.ProductPlans, ProductType: entity.ProductDigital, Subcategory: "فيلا",
				StoreID: "store-132", StoreName: "جرافيكس هاوس", Retailer: "Graphics House", ExternalURL: "#",
				FileFormats: []string{"DWG", "PDF"}},
		},
		entity.LanguageEnglish: {
			{ID: "1", Name: "Antique Glass Chandelier", Price: "3,200 SAR",
				ImageURL: "https://images.pexels.com/photos/7534223/pexels-photo-7534223.jpeg?auto=compress&cs=tinysrgb&w=800",
				Category: entity.ProductDecor, ProductType: entity.ProductPhysical, Subcategory: "إضاءة",
				StoreID: "store-1", StoreName: "تسوق منزل زوي ديشانيل", Retailer: "1stDibs", ExternalURL: "#"},
			{ID: "2", Name: "Wooden Coffee Table", Price: "1,800 SAR", OriginalPrice: "2,200 ريال",
				ImageURL: "https://images.pexels.com/photos/775219/pexels-photo-775219.jpeg?auto=compress&cs=tinysrgb&w=800",
				Category: entity.ProductDecor, ProductType: entity.ProductPhysical, Subcategory: "أثاث",
				StoreID: "store-1", StoreName: "تسوق منزل زوي ديشانيل", Retailer: "Pottery Barn", ExternalURL: "#"},
			{ID: "101", Name: "Modern Villa Plan (Riyadh)", Price: "499 SAR",
				ImageURL: "https://images.pexels.com/photos/1029611/pexels-photo-1029611.jpeg?auto=compress&cs=tinysrgb&w=800",
				Category: entity.ProductPlans, ProductType: entity.ProductDigital, Subcategory: "فيلا",
				StoreID: "store-132", StoreName: "جرافيكس هاوس", Retailer: "Graphics House", ExternalURL: "#",
				FileFormats: []string{"DWG", "PDF"}},
		},
	}
}

func (s *Store) seedListings() {
	s.projects = map[entity.Language][]*entity.Project{
		entity.LanguageArabic: {
			{ID: "1", Title: "تصميم فيلا سكنية مودرن", Client: "محمد العتيبي", Budget: "50,000 - 80,000 ريال",
				Deadline: "2024-12-01", Category: entity.ProjectArchitectural,
				Description: "مطلوب تصميم فيلا مساحة 400م على الطراز المودرن مع واجهات زجاجية.",
				City:        "الرياض", PostedDate: "2024-10-20"},
			{ID: "2", Title: "تشطيب شقة فاخرة", Client: "شركة العقارية", Budget: "150,000 ريال",
				Deadline: "2024-11-15", Category: entity.ProjectContracting,
				Description: "تشطيب شقة بنتهاوس 250م، رخام وبورسلان.",
				City:        "جدة", PostedDate: "2024-10-22"},
			{ID: "3", Title: "توريد مواد سباكة لمجمع سكني", Client: "مؤسسة البناء", Budget: "200,000 ريال",
				Deadline: "2024-12-30", Category: entity.ProjectSupply,
				Description: "توريد أنابيب ومحابس لمشروع 20 فيلا.",
				City:        "الدمام", PostedDate: "2024-10-25"},
		},
		entity.LanguageEnglish: {
			{ID: "1", Title: "Modern Residential Villa Design", Client: "محمد العتيبي", Budget: "50,000 - 80,000 SAR",
				Deadline: "2024-12-01", Category: entity.ProjectArchitectural,
				Description: "Seeking a 400sqm modern villa design with glass facades.",
				City:        "الرياض", PostedDate: "2024-10-20"},
			{ID: "2", Title: "Modern Residential Villa Design", Client: "شركة العقارية", Budget: "150,000 SAR",
				Deadline: "2024-11-15", Category: entity.ProjectContracting,
				Description: "Seeking a 400sqm modern villa design with glass facades.",
				City:        "جدة", PostedDate: "2024-10-22"},
			{ID: "3", Title: "Modern Residential Villa Design", Client: "مؤسسة البناء", Budget: "200,000 SAR",
				Deadline: "2024-12-30", Category: entity.ProjectSupply,
				Description: "Seeking a 400sqm modern villa design with glass facades.",
				City:        "الدمام", PostedDate: "2024-10-25"},
		},
	}

	s.land = map[entity.Language][]*entity.LandListing{
		entity.LanguageArabic: {
			{ID: "1", OwnerName: "عبدالله", City: "الرياض", Neighborhood: "حي الياسمين", Area: 600,
				Description: "أرض سكنية على شارعين، موقع مميز وقريبة من الخدمات.", PostedDate: "2024-06-01",
				ImageURL: "https://images.pexels.com/photos/1018049/pexels-photo-1018049.jpeg"},
			{ID: "2", OwnerName: "محمد", City: "جدة", Neighborhood: "أبحر الشمالية", Area: 800,
				Description: "أرض تجارية على طريق رئيسي، مناسبة لمشروع تجاري.", PostedDate: "2024-05-25",
				ImageURL: "https://images.pexels.com/photos/8431713/pexels-photo-8431713.jpeg"},
		},
		entity.LanguageEnglish: {
			{ID: "1", OwnerName: "Abdullah", City: "Riyadh", Neighborhood: "Al Yasmin", Area: 600,
				Description: "Residential land on two streets, prime location near services.", PostedDate: "2024-06-01",
				ImageURL: "https://images.pexels.com/photos/1018049/pexels-photo-1018049.jpeg"},
			{ID: "2", OwnerName: "Mohammed", City: "Jeddah", Neighborhood: "Obhur Al Shamaliyah", Area: 800,
				Description: "Commercial land on main road, suitable for commercial project.", PostedDate: "2024-05-25",
				ImageURL: "https://images.pexels.com/photos/8431713/pexels-photo-8431713.jpeg"},
		},
	}

	s.properties = map[entity.Language][]*entity.PropertyListing{
		entity.LanguageArabic: {
			{ID: "prop-1", Title: "فيلا فاخرة في حي النرجس", Location: "الرياض", Price: 4500000,
				Type: entity.PropertyVilla, Bedrooms: 5, Bathrooms: 6, Area: 550,
				CoverImageURL: "https://images.pexels.com/photos/1396122/pexels-photo-1396122.jpeg",
				Images:        []string{"https://images.pexels.com/photos/1396122/pexels-photo-1396122.jpeg"},
				Description:   "فيلا بتصميم مودرن وتشطيبات عالية الجودة.",
				Amenities:     []string{"مسبح", "حديقة", "موقف خاص"}, DeveloperID: 104},
			{ID: "prop-2", Title: "شقة بإطلالة بحرية", Location: "جدة", Price: 1800000,
				Type: entity.PropertyApartment, Bedrooms: 3, Bathrooms: 3, Area: 220,
				CoverImageURL: "https://images.pexels.com/photos/2121121/pexels-photo-2121121.jpeg",
				Images:        []string{"https://images.pexels.com/photos/2121121/pexels-photo-2121121.jpeg"},
				Description:   "شقة في برج سكني فاخر مع إطلالة مباشرة على البحر.",
				Amenities:     []string{"نادي صحي", "أمن 24 ساعة"}, DeveloperID: 104},
		},
		entity.LanguageEnglish: {
			{ID: "prop-1", Title: "Luxury Villa in Al Narjis", Location: "Riyadh", Price: 4500000,
				Type: entity.PropertyVilla, Bedrooms: 5, Bathrooms: 6, Area: 550,
				CoverImageURL: "https://images.pexels.com/photos/1396122/pexels-photo-1396122.jpeg",
				Images:        []string{"https://images.pexels.com/photos/1396122/pexels-photo-1396122.jpeg"},
				Description:   "Modern design villa with high-end finishes.",
				Amenities:     []string{"Pool", "Garden", "Private Parking"}, DeveloperID: 104},
			{ID: "prop-2", Title: "Sea View Apartment", Location: "Jeddah", Price: 1800000,
				Type: entity.PropertyApartment, Bedrooms: 3, Bathrooms: 3, Area: 220,
				CoverImageURL: "https://images.pexels.com/photos/2121121/pexels-photo-2121121.jpeg",
				Images:        []string{"https://images.pexels.com/photos/2121121/pexels-photo-2121121.jpeg"},
				Description:   "Apartment in luxury tower with direct sea view.",
				Amenities:     []string{"Health Club", "24/7 Security"}, DeveloperID: 104},
		},
	}
}

func (s *Store) seedContent() {
	s.communityPosts = map[entity.Language][]*entity.CommunityPost{
		entity.LanguageArabic: {
			{ID: 1, Author: entity.PostAuthor{Name: "علي العبدالله", Title: "مهندس معماري",
				AvatarURL: "https://randomuser.me/api/portraits/men/32.jpg"},
				Timestamp: "منذ 3 ساعات", Content: "ما رأيكم في استخدام الحجر الطبيعي في الواجهات المودرن؟",
				Likes: 12, Comments: 4},
		},
		entity.LanguageEnglish: {
			{ID: 1, Author: entity.PostAuthor{Name: "Ali Alabdullah", Title: "Architect",
				AvatarURL: "https://randomuser.me/api/portraits/men/32.jpg"},
				Timestamp: "3 hours ago", Content: "What do you think about using natural stone in modern facades?",
				Likes: 12, Comments: 4},
		},
	}

	s.blogPosts = map[entity.Language][]*entity.BlogPost{
		entity.LanguageArabic: {
			{ID: 1, Title: "مستقبل التصميم بالذكاء الاصطناعي",
				Excerpt:  "كيف يغير الذكاء الاصطناعي ملامح العمارة والتصميم الداخلي.",
				ImageURL: "https://images.pexels.com/photos/30436054/pexels-photo-30436054.jpeg",
				Author:   "سارة محمد", Date: "2024-05-15"},
		},
		entity.LanguageEnglish: {
			{ID: 1, Title: "Future of AI in Design",
				Excerpt:  "How AI is changing the face of architecture and interior design.",
				ImageURL: "https://images.pexels.com/photos/30436054/pexels-photo-30436054.jpeg",
				Author:   "Sarah Mohammed", Date: "2024-05-15"},
		},
	}

	s.globalProjects = map[entity.Language][]*entity.GlobalProject{
		entity.LanguageArabic: {
			{ID: 1, Title: "متحف اللوفر أبوظبي", Architect: "جان نوفيل", Location: "أبوظبي",
				ImageURL:    "https://images.pexels.com/photos/3225529/pexels-photo-3225529.jpeg",
				Description: "تحفة معمارية تجمع بين الحداثة والتراث."},
		},
		entity.LanguageEnglish: {
			{ID: 1, Title: "Louvre Abu Dhabi", Architect: "Jean Nouvel", Location: "Abu Dhabi",
				ImageURL:    "https://images.pexels.com/photos/3225529/pexels-photo-3225529.jpeg",
				Description: "An architectural masterpiece combining modernity and heritage."},
		},
	}

	s.inspirations = map[entity.Language][]*entity.InspirationSource{
		entity.LanguageArabic: {
			{ID: 1, Name: "زها حديد", Style: "تفكيكية",
				ImageURL: "https://upload.wikimedia.org/wikipedia/commons/c/c8/Zaha_Hadid_in_Heydar_Aliyev_Center_baku_nov_2013.jpg",
				Bio:      "ملكة المنحنيات."},
		},
		entity.LanguageEnglish: {
			{ID: 1, Name: "Zaha Hadid", Style: "Deconstructivism",
				ImageURL: "https://upload.wikimedia.org/wikipedia/commons/c/c8/Zaha_Hadid_in_Heydar_Aliyev_Center_baku_nov_2013.jpg",
				Bio:      "Queen of the curve."},
		},
	}
}
