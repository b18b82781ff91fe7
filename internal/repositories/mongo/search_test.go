package mongo

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestNameSearchFilter_QuotesMetacharacters(t *testing.T) {
	filter := nameSearchFilter("C++ (Dev).*")

	name, ok := filter["name"].(bson.M)
	require.True(t, ok)
	pattern, ok := name["$regex"].(string)
	require.True(t, ok)
	assert.Equal(t, "i", name["$options"])

	re, err := regexp.Compile("(?i)" + pattern)
	require.NoError(t, err)
	assert.True(t, re.MatchString("Senior c++ (dev).* Engineer"))
	assert.False(t, re.MatchString("Cpp Developer"), "metacharacters must match literally")
}

func TestNameSearchFilter_PlainQueryIsSubstring(t *testing.T) {
	filter := nameSearchFilter("informatika")

	re, err := regexp.Compile("(?i)" + filter["name"].(bson.M)["$regex"].(string))
	require.NoError(t, err)
	assert.True(t, re.MatchString("Teknik Informatika"))
}
