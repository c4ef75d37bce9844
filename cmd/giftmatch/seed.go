package main

import (
	"time"

	"giftmatch/internal/gift"
	"giftmatch/internal/person"
	"giftmatch/internal/preference"
)

type seedPerson struct {
	name, nationalID, address, email string
	criterion                        preference.Criterion
}

func seedPeople(observers ...person.ReceiptObserver) ([]*person.Person, error) {
	seeds := []seedPerson{
		{"Ana Pérez", "27111222", "Av. Siempreviva 742", "ana@example.com", preference.Unconditional{}},
		{"Bruno Díaz", "30222333", "Calle Falsa 123", "bruno@example.com", preference.Demanding{}},
		{"Carla Gómez", "33444555", "Belgrano 1010", "carla@example.com", preference.BrandLoyal{Brand: "Acme"}},
		{"Diego Ruiz", "35666777", "Mitre 55", "diego@example.com", preference.ValueThreshold{MinValue: 8000}},
		{"Elena Sosa", "38888999", "San Martín 900", "elena@example.com", preference.Any(
			preference.BrandLoyal{Brand: "Lee"},
			preference.ValueThreshold{MinValue: 15000},
		)},
	}

	people := make([]*person.Person, 0, len(seeds))
	for _, s := range seeds {
		p, err := person.New(s.name, s.nationalID, s.address, s.email,
			person.WithCriterion(s.criterion),
			person.WithObservers(observers...),
		)
		if err != nil {
			return nil, err
		}
		people = append(people, p)
	}
	return people, nil
}

func seedGifts() ([]gift.Gift, error) {
	toy, err := gift.NewToy(3000, "Other", 1990)
	if err != nil {
		return nil, err
	}
	perfume, err := gift.NewPerfume(1200, "Acme", false)
	if err != nil {
		return nil, err
	}
	jeans, err := gift.NewClothing(6500, "Jordache")
	if err != nil {
		return nil, err
	}
	spa, err := gift.NewExperience(12000, "Spa Termal", time.Friday)
	if err != nil {
		return nil, err
	}
	return []gift.Gift{toy, perfume, jeans, spa}, nil
}
