// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MemberDash Contributors

//go:build integration

package store_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention

	"github.com/memberdash/memberdash/internal/auth"
	authpg "github.com/memberdash/memberdash/internal/auth/postgres"
	"github.com/memberdash/memberdash/internal/member"
	memberpg "github.com/memberdash/memberdash/internal/member/postgres"
)

func sampleMember(nik int32) member.Member {
	return member.Member{
		NIK:        nik,
		Name:       "Siti",
		Age:        30,
		BirthDate:  member.NewDate(1994, time.March, 2),
		BirthPlace: "Bandung",
		Status:     member.StatusWorker,
		Gender:     member.GenderFemale,
	}
}

var _ = Describe("CredentialRepository", func() {
	var repo *authpg.CredentialRepository

	BeforeEach(func() {
		env.truncate()
		repo = authpg.NewCredentialRepository(env.pool)
	})

	It("stores and finds a password hash", func() {
		email, err := auth.NewEmail("siti@example.com")
		Expect(err).NotTo(HaveOccurred())

		rows, err := repo.Insert(env.ctx, email, "$argon2id$stored")
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(Equal(int64(1)))

		hash, err := repo.FindPasswordHash(env.ctx, email)
		Expect(err).NotTo(HaveOccurred())
		Expect(hash).To(Equal("$argon2id$stored"))
	})

	It("rejects a duplicate email", func() {
		email, err := auth.NewEmail("siti@example.com")
		Expect(err).NotTo(HaveOccurred())

		_, err = repo.Insert(env.ctx, email, "first")
		Expect(err).NotTo(HaveOccurred())

		_, err = repo.Insert(env.ctx, email, "second")
		Expect(err).To(MatchError(auth.ErrEmailTaken))
	})

	It("reports an unknown email as not found", func() {
		email, err := auth.NewEmail("ghost@example.com")
		Expect(err).NotTo(HaveOccurred())

		_, err = repo.FindPasswordHash(env.ctx, email)
		Expect(err).To(MatchError(auth.ErrNotFound))
	})

	It("backs a full register and login", func() {
		hasher, err := auth.NewArgon2idHasherWithParams(auth.Argon2Params{
			Memory: 8 * 1024, Time: 1, Threads: 1, SaltLen: 16, KeyLen: 32,
		})
		Expect(err).NotTo(HaveOccurred())
		secret := []byte("integration-secret")
		issuer, err := auth.NewTokenIssuer(secret)
		Expect(err).NotTo(HaveOccurred())
		verifier, err := auth.NewTokenVerifier(secret)
		Expect(err).NotTo(HaveOccurred())

		svc, err := auth.NewAuthService(repo, hasher, issuer)
		Expect(err).NotTo(HaveOccurred())

		_, err = svc.Register(env.ctx, "siti@example.com", "rahasia")
		Expect(err).NotTo(HaveOccurred())

		_, err = svc.Login(env.ctx, "siti@example.com", "salah")
		Expect(err).To(MatchError(auth.ErrBadCredentials))

		session, err := svc.Login(env.ctx, "siti@example.com", "rahasia")
		Expect(err).NotTo(HaveOccurred())

		claims, err := verifier.Verify(session.Token, time.Now())
		Expect(err).NotTo(HaveOccurred())
		Expect(claims).NotTo(BeNil())
	})
})

var _ = Describe("MemberRepository", func() {
	var repo *memberpg.MemberRepository

	BeforeEach(func() {
		env.truncate()
		repo = memberpg.NewMemberRepository(env.pool)
	})

	It("inserts and reads back a member", func() {
		created, err := repo.Insert(env.ctx, sampleMember(1001), "siti@example.com")
		Expect(err).NotTo(HaveOccurred())
		Expect(created.ID).To(Equal(int32(1)))

		got, err := repo.Get(env.ctx, created.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(*got).To(Equal(*created))
	})

	It("lists members by id with paging", func() {
		for nik := int32(1); nik <= 5; nik++ {
			_, err := repo.Insert(env.ctx, sampleMember(nik), "siti@example.com")
			Expect(err).NotTo(HaveOccurred())
		}

		page, err := repo.List(env.ctx, 2, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(page).To(HaveLen(2))
		Expect(page[0].NIK).To(Equal(int32(2)))
		Expect(page[1].NIK).To(Equal(int32(3)))

		empty, err := repo.List(env.ctx, 10, 50)
		Expect(err).NotTo(HaveOccurred())
		Expect(empty).NotTo(BeNil())
		Expect(empty).To(BeEmpty())
	})

	It("updates every column", func() {
		created, err := repo.Insert(env.ctx, sampleMember(1001), "siti@example.com")
		Expect(err).NotTo(HaveOccurred())

		changed := sampleMember(2002)
		changed.Name = "Budi"
		changed.Status = member.StatusStudent
		changed.Gender = member.GenderMale

		rows, err := repo.Update(env.ctx, created.ID, changed)
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(Equal(int64(1)))

		got, err := repo.Get(env.ctx, created.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.NIK).To(Equal(int32(2002)))
		Expect(got.Name).To(Equal("Budi"))
		Expect(got.Status).To(Equal(member.StatusStudent))
		Expect(got.Gender).To(Equal(member.GenderMale))
	})

	It("reports zero rows for a missing id", func() {
		rows, err := repo.Update(env.ctx, 404, sampleMember(1))
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(BeZero())

		rows, err = repo.Delete(env.ctx, 404)
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(BeZero())

		_, err = repo.Get(env.ctx, 404)
		Expect(err).To(MatchError(member.ErrNotFound))
	})

	It("deletes a member", func() {
		created, err := repo.Insert(env.ctx, sampleMember(1001), "siti@example.com")
		Expect(err).NotTo(HaveOccurred())

		rows, err := repo.Delete(env.ctx, created.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(Equal(int64(1)))

		_, err = repo.Get(env.ctx, created.ID)
		Expect(err).To(MatchError(member.ErrNotFound))
	})

	It("maps an enum the database rejects to invalid member data", func() {
		bad := sampleMember(1001)
		bad.Status = member.Status("astronaut")

		_, err := repo.Insert(env.ctx, bad, "siti@example.com")
		Expect(err).To(MatchError(member.ErrInvalid))
	})
})
