// Command salesdesk is the operator CLI for the sales database.
//
//	salesdesk migrate                 # create the sales tables
//	salesdesk migrate:rollback
//	salesdesk migrate:status
//	salesdesk db:verify               # check tables and columns
//	salesdesk seed                    # demo product catalogue
//	salesdesk user:create ana --password s3cret
//	salesdesk user:show ana
//	salesdesk order:list
//	salesdesk order:document 12 --generated=true
//
// The database comes from DB_DRIVER / DB_PATH / DATABASE_DSN (see package
// config) unless --dsn is given.
package main
