// Package credentials хранит access token сервиса в конфигурационном
// файле пользователя.
//
// Токен обфусцируется обратимым подстановочным шифром (rot13) —
// это НЕ шифрование и не даёт конфиденциальности, только защиту
// от случайного прочтения глазами. Токен непрозрачен для клиента
// и поставляется извне; никакого auth-flow здесь нет.
package credentials
