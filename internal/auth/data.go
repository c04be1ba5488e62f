package auth

// Demo session data. The storefront has no real account backend; a single
// recognized credential hydrates this fixed profile and address book.

func demoUser() User {
	return User{
		ID:        "user-1",
		Email:     "demo@esonge.com",
		Name:      "홍길동",
		Phone:     "010-1234-5678",
		CreatedAt: "2024-01-15T09:00:00Z",
	}
}

func demoAddresses() []Address {
	return []Address{
		{
			ID:            "addr-1",
			Name:          "집",
			Recipient:     "홍길동",
			Phone:         "010-1234-5678",
			ZipCode:       "12345",
			Address:       "강원특별자치도 춘천시 중앙로 1",
			AddressDetail: "101동 1001호",
			IsDefault:     true,
		},
		{
			ID:            "addr-2",
			Name:          "회사",
			Recipient:     "홍길동",
			Phone:         "010-1234-5678",
			ZipCode:       "54321",
			Address:       "서울특별시 강남구 테헤란로 123",
			AddressDetail: "10층",
			IsDefault:     false,
		},
	}
}
