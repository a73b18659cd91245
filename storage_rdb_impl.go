package eojeol

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

const Schema = `
create table if not exists documents (
	id bigint unsigned not null auto_increment primary key,
	body text not null,
	eojeol_count int not null default 0
) default charset=utf8mb4;

create table if not exists morphemes (
	id bigint unsigned not null auto_increment primary key,
	document_id bigint unsigned not null,
	eojeol_index int not null,
	position int not null,
	text varchar(255) not null,
	tag varchar(32) not null,
	term varchar(255) not null,
	unique key document_position (document_id, position),
	key term (term)
) default charset=utf8mb4;
`

type DBConfig struct {
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Addr     string `yaml:"addr"`
	Port     string `yaml:"port"`
	DB       string `yaml:"db"`
}

func NewDBConfig(user, password, addr, port, db string) *DBConfig {
	return &DBConfig{
		User:     user,
		Password: password,
		Addr:     addr,
		Port:     port,
		DB:       db,
	}
}

func (c *DBConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&multiStatements=true", c.User, c.Password, c.Addr, c.Port, c.DB)
}

func NewDBClient(dbConfig *DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("mysql", dbConfig.DSN())
	if err != nil {
		return nil, err
	}
	return db, nil
}

type StorageRdbImpl struct {
	DB *sqlx.DB
}

func NewStorageRdbImpl(db *sqlx.DB) *StorageRdbImpl {
	return &StorageRdbImpl{
		DB: db,
	}
}

func (s *StorageRdbImpl) CreateTables() error {
	_, err := s.DB.Exec(Schema)
	return err
}

func (s *StorageRdbImpl) CountDocuments() (int, error) {
	var count int
	row := s.DB.QueryRow(`select count(*) from documents`)
	if err := row.Scan(&count); err != nil {
		return -1, err
	}
	return count, nil
}

func (s *StorageRdbImpl) AddDocument(doc Document) (DocumentID, error) {
	res, err := s.DB.NamedExec(`insert into documents (body, eojeol_count) values (:body, :eojeol_count)`,
		map[string]interface{}{
			"body":         doc.Body,
			"eojeol_count": doc.EojeolCount,
		})
	if err != nil {
		return 0, err
	}

	insertedID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return DocumentID(insertedID), nil
}

func (s *StorageRdbImpl) GetDocuments(ids []DocumentID) ([]Document, error) {
	if len(ids) == 0 {
		return []Document{}, nil
	}

	query, args, err := sqlx.In(`select id, body, eojeol_count from documents where id in (?) order by id`, ids)
	if err != nil {
		return nil, err
	}
	var docs []Document
	if err = s.DB.Select(&docs, query, args...); err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *StorageRdbImpl) AddMorphemes(morphemes []IndexedMorpheme) error {
	if len(morphemes) == 0 {
		return nil
	}
	_, err := s.DB.NamedExec(
		`insert into morphemes (document_id, eojeol_index, position, text, tag, term)
		values (:document_id, :eojeol_index, :position, :text, :tag, :term)`, morphemes)
	return err
}

func (s *StorageRdbImpl) GetMorphemesByDocumentID(id DocumentID) ([]IndexedMorpheme, error) {
	var morphemes []IndexedMorpheme
	if err := s.DB.Select(&morphemes,
		`select
			document_id,
			eojeol_index,
			position,
			text,
			tag,
			term
		from
			morphemes
		where
			document_id = ?
		order by position`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []IndexedMorpheme{}, nil
		}
		return nil, err
	}
	return morphemes, nil
}

func (s *StorageRdbImpl) GetDocumentIDsByTerm(term string) ([]DocumentID, error) {
	var ids []DocumentID
	if err := s.DB.Select(&ids, `select distinct document_id from morphemes where term = ? order by document_id`, term); err != nil {
		return nil, err
	}
	return ids, nil
}
