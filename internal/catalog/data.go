package catalog

// Categories lists the storefront navigation in display order.
var Categories = []Category{
	{ID: "premium-gift", Name: "선물용 명품", Slug: "premium-gift"},
	{ID: "natural-songi", Name: "자연산 송이 가정용", Slug: "natural-songi"},
	{ID: "frozen-mushroom", Name: "냉동송이/능이버섯", Slug: "frozen-mushroom"},
	{ID: "wild-mushroom", Name: "능이/싸리/곰버섯", Slug: "wild-mushroom"},
	{ID: "wild-ginseng", Name: "산삼/산양산삼", Slug: "wild-ginseng"},
	{ID: "deodeok-doraji", Name: "더덕/도라지", Slug: "deodeok-doraji"},
	{ID: "apple-plum", Name: "사과/자두", Slug: "apple-plum"},
}

// seedProducts is the mock catalog. The storefront runs entirely on this
// table; there is no upstream product service.
var seedProducts = []Product{
	{
		ID: "pg-001", Name: "특선 자연산 송이버섯 선물세트 1kg",
		Price: 890000, OriginalPrice: 990000,
		Images:   []string{"/images/products/songi-gift-1.jpg"},
		Category: "premium-gift", CategoryName: "선물용 명품",
		Origin: OriginDomestic, Grade: GradePremium,
		FreeShipping: true, Stock: 10,
		Description: "강원도 청정지역에서 채취한 최상급 자연산 송이버섯 선물세트입니다.",
		Weight:      "1kg", CreatedAt: "2024-09-01",
		SalesCount: 156, Rating: 4.9, ReviewCount: 48,
	},
	{
		ID: "pg-002", Name: "프리미엄 송이버섯 선물세트 500g",
		Price: 490000, OriginalPrice: 550000,
		Images:   []string{"/images/products/songi-gift-2.jpg"},
		Category: "premium-gift", CategoryName: "선물용 명품",
		Origin: OriginDomestic, Grade: GradePremium,
		FreeShipping: true, Stock: 15,
		Weight: "500g", CreatedAt: "2024-09-05",
		SalesCount: 234, Rating: 4.8, ReviewCount: 72,
	},
	{
		ID: "pg-003", Name: "산양산삼 선물세트 10뿌리",
		Price:    1200000,
		Images:   []string{"/images/products/sansam-gift-1.jpg"},
		Category: "premium-gift", CategoryName: "선물용 명품",
		Origin: OriginDomestic, Grade: GradePremium,
		FreeShipping: true, Stock: 5,
		Weight: "100g", CreatedAt: "2024-08-20",
		SalesCount: 89, Rating: 5.0, ReviewCount: 31,
	},
	{
		ID: "ns-001", Name: "자연산 송이버섯 가정용 300g",
		Price: 180000, OriginalPrice: 220000,
		Images:   []string{"/images/products/songi-home-1.jpg"},
		Category: "natural-songi", CategoryName: "자연산 송이 가정용",
		Origin: OriginDomestic, Grade: GradeHigh,
		FreeShipping: true, Stock: 25,
		Weight: "300g", CreatedAt: "2024-09-10",
		SalesCount: 412, Rating: 4.7, ReviewCount: 156,
	},
	{
		ID: "ns-002", Name: "자연산 송이버섯 가정용 500g",
		Price: 280000, OriginalPrice: 330000,
		Images:   []string{"/images/products/songi-home-2.jpg"},
		Category: "natural-songi", CategoryName: "자연산 송이 가정용",
		Origin: OriginDomestic, Grade: GradeHigh,
		FreeShipping: true, Stock: 18,
		Weight: "500g", CreatedAt: "2024-09-08",
		SalesCount: 289, Rating: 4.6, ReviewCount: 98,
	},
	{
		ID: "ns-003", Name: "자연산 송이버섯 실속형 200g",
		Price:    120000,
		Images:   []string{"/images/products/songi-home-3.jpg"},
		Category: "natural-songi", CategoryName: "자연산 송이 가정용",
		Origin: OriginDomestic, Grade: GradeStandard,
		FreeShipping: false, Stock: 30,
		Weight: "200g", CreatedAt: "2024-09-12",
		SalesCount: 567, Rating: 4.5, ReviewCount: 203,
	},
	{
		ID: "fm-001", Name: "냉동 송이버섯 슬라이스 500g",
		Price: 85000, OriginalPrice: 100000,
		Images:   []string{"/images/products/frozen-songi-1.jpg"},
		Category: "frozen-mushroom", CategoryName: "냉동송이/능이버섯",
		Origin: OriginDomestic, Grade: GradeHigh,
		FreeShipping: true, Stock: 50,
		Weight: "500g", CreatedAt: "2024-08-15",
		SalesCount: 723, Rating: 4.4, ReviewCount: 287,
	},
	{
		ID: "fm-002", Name: "냉동 능이버섯 1kg",
		Price:    120000,
		Images:   []string{"/images/products/frozen-neungi-1.jpg"},
		Category: "frozen-mushroom", CategoryName: "냉동송이/능이버섯",
		Origin: OriginDomestic, Grade: GradeHigh,
		FreeShipping: true, Stock: 40,
		Weight: "1kg", CreatedAt: "2024-08-10",
		SalesCount: 456, Rating: 4.6, ReviewCount: 178,
	},
	{
		ID: "fm-003", Name: "냉동 송이버섯 홀 300g",
		Price:    65000,
		Images:   []string{"/images/products/frozen-songi-2.jpg"},
		Category: "frozen-mushroom", CategoryName: "냉동송이/능이버섯",
		Origin: OriginDomestic, Grade: GradeStandard,
		FreeShipping: false, Stock: 60,
		Weight: "300g", CreatedAt: "2024-09-01",
		SalesCount: 334, Rating: 4.3, ReviewCount: 122,
	},
	{
		ID: "wm-001", Name: "자연산 능이버섯 500g",
		Price: 95000, OriginalPrice: 110000,
		Images:   []string{"/images/products/neungi-1.jpg"},
		Category: "wild-mushroom", CategoryName: "능이/싸리/곰버섯",
		Origin: OriginDomestic, Grade: GradePremium,
		FreeShipping: true, Stock: 20,
		Weight: "500g", CreatedAt: "2024-09-05",
		SalesCount: 198, Rating: 4.8, ReviewCount: 67,
	},
	{
		ID: "wm-002", Name: "자연산 싸리버섯 300g",
		Price:    45000,
		Images:   []string{"/images/products/ssari-1.jpg"},
		Category: "wild-mushroom", CategoryName: "능이/싸리/곰버섯",
		Origin: OriginDomestic, Grade: GradeHigh,
		FreeShipping: false, Stock: 35,
		Weight: "300g", CreatedAt: "2024-09-08",
		SalesCount: 267, Rating: 4.5, ReviewCount: 89,
	},
	{
		ID: "wm-003", Name: "자연산 곰버섯 200g",
		Price:    38000,
		Images:   []string{"/images/products/gom-1.jpg"},
		Category: "wild-mushroom", CategoryName: "능이/싸리/곰버섯",
		Origin: OriginDomestic, Grade: GradeHigh,
		FreeShipping: false, Stock: 28,
		Weight: "200g", CreatedAt: "2024-09-03",
		SalesCount: 145, Rating: 4.6, ReviewCount: 54,
	},
	{
		ID: "wg-001", Name: "산양산삼 5뿌리 세트",
		Price: 580000, OriginalPrice: 650000,
		Images:   []string{"/images/products/sansam-1.jpg"},
		Category: "wild-ginseng", CategoryName: "산삼/산양산삼",
		Origin: OriginDomestic, Grade: GradePremium,
		FreeShipping: true, Stock: 8,
		Weight: "50g", CreatedAt: "2024-08-25",
		SalesCount: 78, Rating: 4.9, ReviewCount: 28,
	},
	{
		ID: "wg-002", Name: "산양산삼 3뿌리 세트",
		Price:    350000,
		Images:   []string{"/images/products/sansam-2.jpg"},
		Category: "wild-ginseng", CategoryName: "산삼/산양산삼",
		Origin: OriginDomestic, Grade: GradePremium,
		FreeShipping: true, Stock: 12,
		Weight: "30g", CreatedAt: "2024-09-01",
		SalesCount: 112, Rating: 4.8, ReviewCount: 41,
	},
	{
		ID: "wg-003", Name: "산양산삼 1뿌리 (대)",
		Price:    150000,
		Images:   []string{"/images/products/sansam-3.jpg"},
		Category: "wild-ginseng", CategoryName: "산삼/산양산삼",
		Origin: OriginDomestic, Grade: GradeHigh,
		FreeShipping: false, Stock: 20,
		Weight: "15g", CreatedAt: "2024-09-10",
		SalesCount: 189, Rating: 4.7, ReviewCount: 63,
	},
	{
		ID: "dd-001", Name: "자연산 더덕 1kg",
		Price: 75000, OriginalPrice: 85000,
		Images:   []string{"/images/products/deodeok-1.jpg"},
		Category: "deodeok-doraji", CategoryName: "더덕/도라지",
		Origin: OriginDomestic, Grade: GradePremium,
		FreeShipping: true, Stock: 45,
		Weight: "1kg", CreatedAt: "2024-09-05",
		SalesCount: 345, Rating: 4.7, ReviewCount: 134,
	},
	{
		ID: "dd-002", Name: "자연산 도라지 500g",
		Price:    35000,
		Images:   []string{"/images/products/doraji-1.jpg"},
		Category: "deodeok-doraji", CategoryName: "더덕/도라지",
		Origin: OriginDomestic, Grade: GradeHigh,
		FreeShipping: false, Stock: 55,
		Weight: "500g", CreatedAt: "2024-09-08",
		SalesCount: 423, Rating: 4.5, ReviewCount: 167,
	},
	{
		ID: "dd-003", Name: "더덕 선물세트 2kg",
		Price: 140000, OriginalPrice: 160000,
		Images:   []string{"/images/products/deodeok-gift-1.jpg"},
		Category: "deodeok-doraji", CategoryName: "더덕/도라지",
		Origin: OriginDomestic, Grade: GradePremium,
		FreeShipping: true, Stock: 25,
		Weight: "2kg", CreatedAt: "2024-08-28",
		SalesCount: 178, Rating: 4.8, ReviewCount: 56,
	},
	{
		ID: "ap-001", Name: "강원 부사 사과 5kg",
		Price: 45000, OriginalPrice: 52000,
		Images:   []string{"/images/products/apple-1.jpg"},
		Category: "apple-plum", CategoryName: "사과/자두",
		Origin: OriginDomestic, Grade: GradePremium,
		FreeShipping: true, Stock: 80,
		Weight: "5kg", CreatedAt: "2024-09-15",
		SalesCount: 567, Rating: 4.6, ReviewCount: 234,
	},
	{
		ID: "ap-002", Name: "강원 부사 사과 10kg",
		Price: 85000, OriginalPrice: 98000,
		Images:   []string{"/images/products/apple-2.jpg"},
		Category: "apple-plum", CategoryName: "사과/자두",
		Origin: OriginDomestic, Grade: GradePremium,
		FreeShipping: true, Stock: 60,
		Weight: "10kg", CreatedAt: "2024-09-12",
		SalesCount: 389, Rating: 4.7, ReviewCount: 156,
	},
	{
		ID: "ap-003", Name: "자두 3kg 실속 팩",
		Price:    32000,
		Images:   []string{"/images/products/plum-1.jpg"},
		Category: "apple-plum", CategoryName: "사과/자두",
		Origin: OriginDomestic, Grade: GradeHigh,
		FreeShipping: false, Stock: 0,
		Description: "달콤하고 새콤한 제철 자두입니다.",
		Weight:      "3kg", CreatedAt: "2024-08-20",
		SalesCount: 234, Rating: 4.4, ReviewCount: 89,
	},
	{
		ID: "ap-004", Name: "사과 선물세트 프리미엄 5kg",
		Price:    65000,
		Images:   []string{"/images/products/apple-gift-1.jpg"},
		Category: "apple-plum", CategoryName: "사과/자두",
		Origin: OriginDomestic, Grade: GradePremium,
		FreeShipping: true, Stock: 35,
		Description: "명절 선물용 프리미엄 사과 세트입니다.",
		Weight:      "5kg", CreatedAt: "2024-09-10",
		SalesCount: 278, Rating: 4.8, ReviewCount: 98,
	},
}
