package mysql

import (
	"context"
	"database/sql"
	"errors"

	mysqldrv "github.com/go-sql-driver/mysql"

	"stayhub/internal/domain"
)

const dupEntryErrNo = 1062

func (r *Repo) CreateUser(ctx context.Context, email, passwordHash string) (domain.User, error) {
	res, err := r.db.ExecContext(ctx, insertUserSQL, email, passwordHash)
	if err != nil {
		var me *mysqldrv.MySQLError
		if errors.As(err, &me) && me.Number == dupEntryErrNo {
			return domain.User{}, domain.ErrEmailTaken
		}
		return domain.User{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.User{}, err
	}
	return domain.User{ID: id, Email: email}, nil
}

func (r *Repo) GetUserByEmail(ctx context.Context, email string) (domain.UserWithPassword, error) {
	var u domain.UserWithPassword
	err := r.db.QueryRowContext(ctx, getUserByEmailSQL, email).Scan(&u.ID, &u.Email, &u.PasswordHash)
	if err == sql.ErrNoRows {
		return domain.UserWithPassword{}, domain.ErrNotFound
	}
	return u, err
}

func (r *Repo) GetUser(ctx context.Context, id int64) (domain.User, error) {
	var u domain.User
	err := r.db.QueryRowContext(ctx, getUserSQL, id).Scan(&u.ID, &u.Email)
	if err == sql.ErrNoRows {
		return domain.User{}, domain.ErrNotFound
	}
	return u, err
}
