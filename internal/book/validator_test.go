package book

import (
	"encoding/json"
	"testing"

	"booksapi/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func TestValidateCreate_ValidInput(t *testing.T) {
	in, messages := ValidateCreate(mustJSON(t, testutil.BookPayload()))
	require.Empty(t, messages)

	assert.Equal(t, Book{
		ISBN:      "0987654321",
		AmazonURL: "http://amazon.com/book2",
		Author:    "Author2",
		Language:  "english",
		Pages:     300,
		Publisher: "Publisher2",
		Title:     "Test Book 2",
		Year:      2021,
	}, in.Book())
}

func TestValidateCreate_MalformedURL(t *testing.T) {
	for _, url := range []string{"not-a-url", "invalid-url", "amazon.com/book", "ftp://amazon.com/book", "http://"} {
		t.Run(url, func(t *testing.T) {
			payload := testutil.BookPayload()
			payload["amazon_url"] = url

			_, messages := ValidateCreate(mustJSON(t, payload))
			assert.Equal(t, []string{"amazon_url must be a valid URL"}, messages)
		})
	}
}

func TestValidateCreate_MissingFields(t *testing.T) {
	_, messages := ValidateCreate([]byte(`{}`))

	assert.Equal(t, []string{
		"isbn is required",
		"amazon_url is required",
		"author is required",
		"language is required",
		"pages is required",
		"publisher is required",
		"title is required",
		"year is required",
	}, messages)
}

func TestValidateCreate_WrongTypes(t *testing.T) {
	payload := testutil.BookPayload()
	payload["pages"] = "three hundred"
	payload["title"] = 42
	payload["year"] = 2021.5

	_, messages := ValidateCreate(mustJSON(t, payload))
	assert.Equal(t, []string{
		"pages must be an integer",
		"title must be a string",
		"year must be an integer",
	}, messages)
}

func TestValidateCreate_FormatRules(t *testing.T) {
	payload := testutil.BookPayload()
	payload["pages"] = 0
	payload["author"] = ""
	payload["isbn"] = ""

	_, messages := ValidateCreate(mustJSON(t, payload))
	assert.Equal(t, []string{
		"isbn must not be empty",
		"author must not be empty",
		"pages must be greater than 0",
	}, messages)
}

func TestValidateCreate_IntegerColumnBounds(t *testing.T) {
	payload := testutil.BookPayload()
	payload["pages"] = 3000000000
	payload["year"] = 99999999999

	_, messages := ValidateCreate(mustJSON(t, payload))
	assert.Equal(t, []string{
		"pages must be at most 2147483647",
		"year must be at most 2147483647",
	}, messages)

	payload["pages"] = 2147483647
	payload["year"] = -99999999999
	_, messages = ValidateCreate(mustJSON(t, payload))
	assert.Equal(t, []string{"year must be at least -2147483648"}, messages)

	payload["year"] = 2147483647
	_, messages = ValidateCreate(mustJSON(t, payload))
	assert.Empty(t, messages)
}

func TestValidateCreate_BlankStrings(t *testing.T) {
	payload := testutil.BookPayload()
	payload["isbn"] = "   "
	payload["author"] = " "
	payload["title"] = "\t\n"

	_, messages := ValidateCreate(mustJSON(t, payload))
	assert.Equal(t, []string{
		"isbn must not be empty",
		"author must not be empty",
		"title must not be empty",
	}, messages)
}

func TestValidateUpdate_BlankISBN(t *testing.T) {
	payload := testutil.BookPayload()
	payload["isbn"] = "  "

	_, messages := ValidateUpdate(mustJSON(t, payload))
	assert.Equal(t, []string{"isbn must not be empty"}, messages)
}

func TestValidateCreate_NullIsMissing(t *testing.T) {
	payload := testutil.BookPayload()
	payload["publisher"] = nil

	_, messages := ValidateCreate(mustJSON(t, payload))
	assert.Equal(t, []string{"publisher is required"}, messages)
}

func TestValidateCreate_UnknownProperties(t *testing.T) {
	payload := testutil.BookPayload()
	payload["rating"] = 5
	payload["genre"] = "fiction"

	_, messages := ValidateCreate(mustJSON(t, payload))
	assert.Equal(t, []string{
		"genre is not an allowed property",
		"rating is not an allowed property",
	}, messages)
}

func TestValidateCreate_NotAnObject(t *testing.T) {
	for _, body := range []string{``, `null`, `[]`, `"book"`, `{"isbn":`} {
		_, messages := ValidateCreate([]byte(body))
		assert.Equal(t, []string{"request body must be a JSON object"}, messages, "body %q", body)
	}
}

func TestValidateUpdate_ISBNOptional(t *testing.T) {
	payload := testutil.BookPayload()
	delete(payload, "isbn")

	in, messages := ValidateUpdate(mustJSON(t, payload))
	require.Empty(t, messages)
	assert.Nil(t, in.ISBN)
	assert.Equal(t, "Test Book 2", *in.Title)
}

func TestValidateUpdate_AllOtherFieldsRequired(t *testing.T) {
	_, messages := ValidateUpdate([]byte(`{"title":"Only a title"}`))

	assert.Equal(t, []string{
		"amazon_url is required",
		"author is required",
		"language is required",
		"pages is required",
		"publisher is required",
		"year is required",
	}, messages)
}

func TestValidateUpdate_MalformedURL(t *testing.T) {
	payload := testutil.BookPayload()
	delete(payload, "isbn")
	payload["amazon_url"] = "invalid-url"

	_, messages := ValidateUpdate(mustJSON(t, payload))
	assert.NotEmpty(t, messages)
}
