// Package dialect names the database dialects the generator can introspect.
//
// Only MySQL (and compatible servers such as MariaDB) is supported; the
// introspection queries target the MySQL information_schema catalog.
package dialect

// MySQL is the dialect identifier and the database/sql driver name
// registered by github.com/go-sql-driver/mysql.
const MySQL = "mysql"
