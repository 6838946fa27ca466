package memory

import "fmt"

func errForeignKey(table, column string) error {
	return fmt.Errorf("insert on %q violates foreign key on %q", table, column)
}
