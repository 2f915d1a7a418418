package locale_test

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/jonwraymond/inflect/locale"
)

func ExampleFormat() {
	fmt.Println(locale.Format("Hello %@ %@", "John", "Smith"))
	fmt.Println(locale.Format("Hello %@2 %@1", "John", "Smith"))
	fmt.Println(locale.Format("Value: %@", nil))
	// Output:
	// Hello John Smith
	// Hello Smith John
	// Value: (null)
}

func ExampleLoc() {
	strings := locale.NewTable(map[string]string{
		"welcome": "Welcome back, %@",
	})

	fmt.Println(locale.Loc(strings, "welcome", "Ada"))
	fmt.Println(locale.Loc(strings, "Untranslated %@", "text"))
	// Output:
	// Welcome back, Ada
	// Untranslated text
}

func ExampleCatalog_Localizer() {
	catalog := locale.NewCatalog()
	_ = catalog.Register(language.English, locale.NewTable(map[string]string{"bye": "Goodbye %@"}))
	_ = catalog.Register(language.Spanish, locale.NewTable(map[string]string{"bye": "Adiós %@"}))

	l := catalog.Localizer(language.MustParse("es-MX"))
	fmt.Println(l.Tag(), l.Loc("bye", "Ana"))
	// Output: es Adiós Ana
}
