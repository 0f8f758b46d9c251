package storage

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

var (
	errNoToken      = errors.New(`no header "Authorization"`)
	errInvalidToken = errors.New("invalid token")
)

type registerUser struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func (s *Storage) handleRegister(w http.ResponseWriter, r *http.Request) {
	if t := r.Header.Get("Content-Type"); t != "application/json" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	register := registerUser{}
	err := json.NewDecoder(r.Body).Decode(&register)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if register.Login == "" || register.Password == "" {
		http.Error(w, "login and password are required", http.StatusBadRequest)
		return
	}

	if _, _, err := getUser(r.Context(), s.db, register.Login); err == nil {
		http.Error(w, "user already exists", http.StatusConflict)
		return
	} else if err != errNoUser {
		s.log.Error(err, "register failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(register.Password), s.bcryptCost)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	id, err := storeUser(r.Context(), s.db, register.Login, hashedPassword)
	if err != nil {
		s.log.Error(err, "register failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.log.Info("user registered", "login", register.Login, "id", id)
	w.WriteHeader(http.StatusOK)
}

func (s *Storage) handleLogin(w http.ResponseWriter, r *http.Request) {
	if t := r.Header.Get("Content-Type"); t != "application/json" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	register := registerUser{}
	err := json.NewDecoder(r.Body).Decode(&register)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, hashedPassword, err := getUser(r.Context(), s.db, register.Login)
	if err == errNoUser {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		s.log.Error(err, "login failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(register.Password)); err != nil {
		http.Error(w, "incorrect password", http.StatusBadRequest)
		return
	}

	tokenString, err := s.newToken(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tokenString)
}

func (s *Storage) newToken(userId int64) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  strconv.FormatInt(userId, 10),
		"nbf": now.Unix(),
		"exp": now.Add(30 * 24 * time.Hour).Unix(),
		"iat": now.Unix(),
	})
	tokenString, err := token.SignedString(s.key)
	return tokenString, errors.Wrap(err, "sign token")
}

// getUserId validates the token of the request and returns the user it was
// issued to.
func (s *Storage) getUserId(r *http.Request) (int64, error) {
	bearerToken := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if bearerToken == "" {
		return 0, errNoToken
	}

	token, err := jwt.Parse(bearerToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.key, nil
	})
	if err != nil {
		return 0, errors.Wrap(errInvalidToken, err.Error())
	}
	if !token.Valid {
		return 0, errInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errInvalidToken
	}
	strId, _ := claims["id"].(string)
	id, err := strconv.ParseInt(strId, 10, 64)
	if err != nil {
		return 0, errInvalidToken
	}
	return id, nil
}
