package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCreatePostRequest(t *testing.T) {
	valid := CreatePostRequest{Title: "A", ImageURL: "u", AuthorName: "Bob", AuthorID: "u1"}
	assert.NoError(t, Validate(&valid))

	missing := valid
	missing.AuthorID = ""
	err := Validate(&missing)
	assert.Error(t, err)
	assert.Equal(t, []string{"authorId"}, MissingFields(err))
}

func TestValidateCreateCommentRequest(t *testing.T) {
	err := Validate(&CreateCommentRequest{AuthorName: "Bob"})
	assert.Error(t, err)
	assert.ElementsMatch(t, []string{"text", "authorId"}, MissingFields(err))
}

func TestValidateProductRequest(t *testing.T) {
	req := ProductRequest{
		Title:       "Mug",
		Description: "A mug",
		ImageURL:    "mug.png",
		Price:       Price(`19.9`),
		Link:        "https://shop/mug",
	}
	assert.NoError(t, Validate(&req))

	req.Price = nil
	err := Validate(&req)
	assert.Error(t, err)
	assert.Equal(t, []string{"price"}, MissingFields(err))
}

func TestMissingFieldsIgnoresOtherErrors(t *testing.T) {
	assert.Nil(t, MissingFields(assert.AnError))
}
