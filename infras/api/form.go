package api

import (
	"fmt"
	"net/url"
)

// IndexedField appends one field of the i-th element of a list the way the backend's
// body parser expects it, e.g. orderedItems[0]['itemName'] or tableTypes[0][id].
func IndexedField(form url.Values, list string, index int, field, value string, quoted bool) {
	if quoted {
		form.Add(fmt.Sprintf("%s[%d]['%s']", list, index, field), value)

		return
	}

	form.Add(fmt.Sprintf("%s[%d][%s]", list, index, field), value)
}
